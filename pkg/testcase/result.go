package testcase

import "time"

// Status constants for case execution outcomes. Aborted is the
// outcome of an unmet assumption: terminal like failed, but it
// neither passes nor fails the case. Skipped marks cases that
// were filtered out before running.
const (
	StatusPending  = "pending"
	StatusRunning  = "running"
	StatusPassed   = "passed"
	StatusFailed   = "failed"
	StatusAborted  = "aborted"
	StatusSkipped  = "skipped"
	StatusTimedOut = "timed_out"
	StatusError    = "error"
)

// Result captures the complete outcome of a case execution.
type Result struct {
	// CaseID is the unique identifier of the case.
	CaseID ID `json:"case_id"`

	// CaseName is the human-readable name.
	CaseName string `json:"case_name"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// StartTime is when execution began.
	StartTime time.Time `json:"start_time"`

	// EndTime is when execution finished.
	EndTime time.Time `json:"end_time"`

	// Duration is the wall-clock execution time.
	Duration time.Duration `json:"duration"`

	// Message carries the abort message for aborted cases.
	Message string `json:"message,omitempty"`

	// Error contains the error message for failed, errored, or
	// timed-out cases.
	Error string `json:"error,omitempty"`
}

// IsFinal returns true if the status is a terminal state.
func (r *Result) IsFinal() bool {
	switch r.Status {
	case StatusPassed, StatusFailed, StatusAborted,
		StatusSkipped, StatusTimedOut, StatusError:
		return true
	}
	return false
}

// Succeeded returns true if the case passed.
func (r *Result) Succeeded() bool {
	return r.Status == StatusPassed
}

// CountsAgainstRun returns true if the result should count as a
// defect for the run: failed, errored, or timed out. Aborted and
// skipped cases never count against the run.
func (r *Result) CountsAgainstRun() bool {
	switch r.Status {
	case StatusFailed, StatusTimedOut, StatusError:
		return true
	}
	return false
}
