// Package runner provides the case execution engine. It runs
// registered cases sequentially or in parallel and interprets
// the abort signal raised by pkg/assumption: an aborted case is
// recorded as aborted, never as failed.
package runner

import (
	"context"
	"fmt"
	"time"

	"digital.vasic.assumptions/pkg/abort"
	"digital.vasic.assumptions/pkg/logging"
	"digital.vasic.assumptions/pkg/metrics"
	"digital.vasic.assumptions/pkg/monitor"
	"digital.vasic.assumptions/pkg/registry"
	"digital.vasic.assumptions/pkg/testcase"
	"digital.vasic.assumptions/pkg/unrecoverable"
)

// Runner defines the interface for case execution.
type Runner interface {
	// Run executes a single case by ID.
	Run(
		ctx context.Context,
		id testcase.ID,
		config *testcase.Config,
	) (*testcase.Result, error)

	// RunAll executes the cases the config selects, in ID
	// order.
	RunAll(
		ctx context.Context,
		config *testcase.Config,
	) ([]*testcase.Result, error)

	// RunParallel executes the selected cases concurrently
	// with the config's concurrency limit.
	RunParallel(
		ctx context.Context,
		config *testcase.Config,
	) ([]*testcase.Result, error)
}

// DefaultRunner is the standard Runner implementation.
type DefaultRunner struct {
	registry  registry.Registry
	logger    logging.Logger
	recorder  metrics.Recorder
	collector *monitor.Collector
	timeout   time.Duration
}

// NewRunner creates a DefaultRunner with the supplied options.
func NewRunner(opts ...RunnerOption) *DefaultRunner {
	r := &DefaultRunner{
		registry: registry.Default,
		logger:   logging.NullLogger{},
		recorder: metrics.NoopRecorder{},
		timeout:  10 * time.Minute,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes a single case by ID.
func (r *DefaultRunner) Run(
	ctx context.Context,
	id testcase.ID,
	config *testcase.Config,
) (*testcase.Result, error) {
	c, err := r.registry.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return r.execute(ctx, c, config), nil
}

// RunAll executes the selected cases sequentially. With
// FailFast, the run stops after the first failed, errored, or
// timed-out case and the remaining cases are recorded as
// skipped; aborted cases never stop the run.
func (r *DefaultRunner) RunAll(
	ctx context.Context,
	config *testcase.Config,
) ([]*testcase.Result, error) {
	selected, err := r.registry.Select(config)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to select cases: %w", err,
		)
	}

	r.recorder.IncrementRunTotal()

	results := make([]*testcase.Result, 0, len(selected))
	stopped := false

	for _, c := range selected {
		if stopped {
			results = append(results, r.skip(c))
			continue
		}

		result := r.execute(ctx, c, config)
		results = append(results, result)

		if config.FailFast && result.CountsAgainstRun() {
			r.logger.Warn(
				"fail-fast triggered",
				logging.StringField(
					"case_id", string(c.ID),
				),
				logging.StringField(
					"status", result.Status,
				),
			)
			stopped = true
		}
	}

	r.finishRun()
	return results, nil
}

// RunParallel executes the selected cases concurrently using at
// most the config's MaxConcurrency goroutines. FailFast is not
// honoured in parallel mode.
func (r *DefaultRunner) RunParallel(
	ctx context.Context,
	config *testcase.Config,
) ([]*testcase.Result, error) {
	selected, err := r.registry.Select(config)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to select cases: %w", err,
		)
	}

	r.recorder.IncrementRunTotal()
	results, err := runParallel(
		ctx, r, selected, config, config.MaxConcurrency,
	)
	r.finishRun()
	return results, err
}

// execute runs a single case: timeout context, recover around
// the body, and outcome classification.
func (r *DefaultRunner) execute(
	ctx context.Context,
	c *testcase.Case,
	config *testcase.Config,
) *testcase.Result {
	result := &testcase.Result{
		CaseID:    c.ID,
		CaseName:  c.Name,
		Status:    testcase.StatusRunning,
		StartTime: time.Now(),
	}

	r.logger.Info(
		"case started",
		logging.StringField("case_id", string(c.ID)),
		logging.StringField("case_name", c.Name),
	)
	if r.collector != nil {
		r.collector.EmitStarted(c.ID, c.Name)
	}

	timeout := c.Timeout
	if timeout == 0 && config != nil {
		timeout = config.Timeout.Std()
	}
	if timeout == 0 {
		timeout = r.timeout
	}

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := invoke(execCtx, c.Run)

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	switch {
	case err == nil:
		result.Status = testcase.StatusPassed

	case abort.IsAborted(err):
		// An unmet assumption: the case stops here without
		// counting against the run.
		result.Status = testcase.StatusAborted
		result.Message = err.Error()

	case execCtx.Err() == context.DeadlineExceeded:
		result.Status = testcase.StatusTimedOut
		result.Error = "case execution timed out"

	case isPanicError(err):
		result.Status = testcase.StatusError
		result.Error = err.Error()

	default:
		result.Status = testcase.StatusFailed
		result.Error = err.Error()
	}

	r.record(result)
	return result
}

// skip produces a skipped result for a case that was not run
// because fail-fast stopped the run.
func (r *DefaultRunner) skip(
	c *testcase.Case,
) *testcase.Result {
	now := time.Now()
	result := &testcase.Result{
		CaseID:    c.ID,
		CaseName:  c.Name,
		Status:    testcase.StatusSkipped,
		StartTime: now,
		EndTime:   now,
	}
	r.record(result)
	return result
}

// record logs, measures, and broadcasts a terminal result.
func (r *DefaultRunner) record(result *testcase.Result) {
	r.recorder.RecordCase(
		string(result.CaseID), result.Status, result.Duration,
	)
	if r.collector != nil {
		r.collector.EmitResult(result)
	}

	fields := []logging.Field{
		logging.StringField(
			"case_id", string(result.CaseID),
		),
		logging.StringField("status", result.Status),
		logging.DurationField("duration", result.Duration),
	}
	switch result.Status {
	case testcase.StatusPassed, testcase.StatusSkipped:
		r.logger.Info("case finished", fields...)
	case testcase.StatusAborted:
		fields = append(fields, logging.StringField(
			"message", result.Message,
		))
		r.logger.Info("case aborted", fields...)
	default:
		fields = append(fields, logging.StringField(
			"error", result.Error,
		))
		r.logger.Error("case finished", fields...)
	}
}

// finishRun emits the end-of-run event.
func (r *DefaultRunner) finishRun() {
	if r.collector != nil {
		r.collector.EmitRunCompleted()
	}
}

// panicError marks a recoverable panic that escaped a case
// body, so it can be classified as an error rather than an
// ordinary failure.
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("case panicked: %v", e.value)
}

func isPanicError(err error) bool {
	_, ok := err.(*panicError)
	return ok
}

// invoke runs the case body. An abort panic becomes the abort
// signal error, unrecoverable panics are re-raised unchanged,
// and any other panic becomes a *panicError.
func invoke(ctx context.Context, run testcase.Func) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if sig, ok := abort.FromPanic(rec); ok {
				err = sig
				return
			}
			unrecoverable.Rethrow(rec)
			err = &panicError{value: rec}
		}
	}()
	return run(ctx)
}
