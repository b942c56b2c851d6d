// Package monitor provides live observation of a run: an event
// collector with subscriber callbacks and a WebSocket server
// that streams case lifecycle events to connected clients.
package monitor

import (
	"time"

	"digital.vasic.assumptions/pkg/testcase"
)

// EventType represents the type of case event.
type EventType string

const (
	EventStarted      EventType = "started"
	EventPassed       EventType = "passed"
	EventFailed       EventType = "failed"
	EventAborted      EventType = "aborted"
	EventSkipped      EventType = "skipped"
	EventTimedOut     EventType = "timed_out"
	EventErrored      EventType = "errored"
	EventRunCompleted EventType = "run_completed"
)

// Event represents a lifecycle event during case execution.
type Event struct {
	Type      EventType     `json:"type"`
	CaseID    testcase.ID   `json:"case_id,omitempty"`
	Name      string        `json:"name,omitempty"`
	Status    string        `json:"status,omitempty"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// eventTypeForStatus maps a terminal result status to its event
// type. Unknown statuses map to EventErrored.
func eventTypeForStatus(status string) EventType {
	switch status {
	case testcase.StatusPassed:
		return EventPassed
	case testcase.StatusFailed:
		return EventFailed
	case testcase.StatusAborted:
		return EventAborted
	case testcase.StatusSkipped:
		return EventSkipped
	case testcase.StatusTimedOut:
		return EventTimedOut
	}
	return EventErrored
}
