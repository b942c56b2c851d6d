package monitor

import (
	"sync"
	"time"

	"digital.vasic.assumptions/pkg/testcase"
)

// Collector captures case events and aggregate statistics.
type Collector struct {
	mu       sync.RWMutex
	events   []Event
	handlers []func(Event)
	stats    Stats
}

// Stats holds aggregate run statistics. Aborted cases are
// tracked separately from failed ones.
type Stats struct {
	Total     int           `json:"total"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Aborted   int           `json:"aborted"`
	Skipped   int           `json:"skipped"`
	TimedOut  int           `json:"timed_out"`
	Errored   int           `json:"errored"`
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
}

// NewCollector creates a new event collector.
func NewCollector() *Collector {
	return &Collector{
		events: make([]Event, 0, 64),
		stats:  Stats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler to be called for each event.
func (c *Collector) OnEvent(handler func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers.
func (c *Collector) Emit(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	switch event.Type {
	case EventPassed:
		c.stats.Total++
		c.stats.Passed++
	case EventFailed:
		c.stats.Total++
		c.stats.Failed++
	case EventAborted:
		c.stats.Total++
		c.stats.Aborted++
	case EventSkipped:
		c.stats.Total++
		c.stats.Skipped++
	case EventTimedOut:
		c.stats.Total++
		c.stats.TimedOut++
	case EventErrored:
		c.stats.Total++
		c.stats.Errored++
	}
	c.stats.Duration = time.Since(c.stats.StartTime)
	handlers := make([]func(Event), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// EmitStarted emits a case started event.
func (c *Collector) EmitStarted(id testcase.ID, name string) {
	c.Emit(Event{
		Type:   EventStarted,
		CaseID: id,
		Name:   name,
	})
}

// EmitResult emits the terminal event for a case result.
func (c *Collector) EmitResult(result *testcase.Result) {
	message := result.Message
	if message == "" {
		message = result.Error
	}
	c.Emit(Event{
		Type:     eventTypeForStatus(result.Status),
		CaseID:   result.CaseID,
		Name:     result.CaseName,
		Status:   result.Status,
		Message:  message,
		Duration: result.Duration,
	})
}

// EmitRunCompleted emits the end-of-run event.
func (c *Collector) EmitRunCompleted() {
	c.Emit(Event{Type: EventRunCompleted})
}

// Events returns a copy of all recorded events.
func (c *Collector) Events() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Snapshot returns the current aggregate statistics.
func (c *Collector) Snapshot() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}
