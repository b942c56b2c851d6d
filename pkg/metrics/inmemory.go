package metrics

import (
	"sync"
	"time"
)

// InMemoryRecorder implements Recorder with in-process counters.
// It is safe for concurrent use.
type InMemoryRecorder struct {
	mu        sync.Mutex
	outcomes  map[string]int
	durations map[string][]time.Duration
	runTotal  int
	active    int
}

// NewInMemoryRecorder creates a new InMemoryRecorder.
func NewInMemoryRecorder() *InMemoryRecorder {
	return &InMemoryRecorder{
		outcomes:  make(map[string]int),
		durations: make(map[string][]time.Duration),
	}
}

// RecordCase records a case execution outcome.
func (m *InMemoryRecorder) RecordCase(
	id, status string, duration time.Duration,
) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.outcomes[id+":"+status]++
	m.durations[id] = append(m.durations[id], duration)
}

// IncrementRunTotal increments the total run counter.
func (m *InMemoryRecorder) IncrementRunTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runTotal++
}

// SetActiveCases sets the gauge of in-flight cases.
func (m *InMemoryRecorder) SetActiveCases(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = count
}

// OutcomeCount returns the count for a case+status combination.
func (m *InMemoryRecorder) OutcomeCount(id, status string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcomes[id+":"+status]
}

// RunTotal returns the total run counter.
func (m *InMemoryRecorder) RunTotal() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runTotal
}

// ActiveCases returns the in-flight gauge value.
func (m *InMemoryRecorder) ActiveCases() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// AverageDuration returns the mean execution duration recorded
// for a case, or zero when none was recorded.
func (m *InMemoryRecorder) AverageDuration(
	id string,
) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	samples := m.durations[id]
	if len(samples) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range samples {
		total += d
	}
	return total / time.Duration(len(samples))
}
