package runner

import (
	"time"

	"digital.vasic.assumptions/pkg/logging"
	"digital.vasic.assumptions/pkg/metrics"
	"digital.vasic.assumptions/pkg/monitor"
	"digital.vasic.assumptions/pkg/registry"
)

// RunnerOption configures a DefaultRunner.
type RunnerOption func(*DefaultRunner)

// WithRegistry sets the case registry used by the runner.
func WithRegistry(reg registry.Registry) RunnerOption {
	return func(r *DefaultRunner) {
		r.registry = reg
	}
}

// WithLogger sets the logger used by the runner.
func WithLogger(logger logging.Logger) RunnerOption {
	return func(r *DefaultRunner) {
		r.logger = logger
	}
}

// WithRecorder sets the metrics recorder used by the runner.
func WithRecorder(recorder metrics.Recorder) RunnerOption {
	return func(r *DefaultRunner) {
		r.recorder = recorder
	}
}

// WithCollector sets the monitor collector that receives case
// lifecycle events.
func WithCollector(collector *monitor.Collector) RunnerOption {
	return func(r *DefaultRunner) {
		r.collector = collector
	}
}

// WithTimeout sets the default execution timeout for cases that
// do not specify their own.
func WithTimeout(timeout time.Duration) RunnerOption {
	return func(r *DefaultRunner) {
		r.timeout = timeout
	}
}
