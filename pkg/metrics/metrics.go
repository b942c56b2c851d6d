// Package metrics provides recording of case execution
// outcomes. The in-memory recorder is intentionally simple;
// host applications that want Prometheus export wrap it with
// prometheus/client_golang themselves.
package metrics

import "time"

// Recorder defines the interface for recording run metrics.
type Recorder interface {
	// RecordCase records a case execution outcome.
	RecordCase(id, status string, duration time.Duration)
	// IncrementRunTotal increments the total run counter.
	IncrementRunTotal()
	// SetActiveCases sets the gauge of in-flight cases.
	SetActiveCases(count int)
}

// NoopRecorder is a no-op implementation of Recorder useful
// when metrics collection is disabled.
type NoopRecorder struct{}

func (NoopRecorder) RecordCase(_, _ string, _ time.Duration) {}
func (NoopRecorder) IncrementRunTotal()                      {}
func (NoopRecorder) SetActiveCases(_ int)                    {}
