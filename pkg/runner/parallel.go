package runner

import (
	"context"
	"sync"

	"digital.vasic.assumptions/pkg/testcase"
)

// parallelResult pairs a result with its original index so
// results can be returned in submission order.
type parallelResult struct {
	index  int
	result *testcase.Result
	err    error
}

// runParallel executes cases concurrently with a semaphore
// limiting maxConcurrency goroutines. Results are returned in
// the same order as the input cases.
func runParallel(
	ctx context.Context,
	r *DefaultRunner,
	cases []*testcase.Case,
	config *testcase.Config,
	maxConcurrency int,
) ([]*testcase.Result, error) {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	sem := make(chan struct{}, maxConcurrency)
	resultsCh := make(chan parallelResult, len(cases))

	var wg sync.WaitGroup

	for i, c := range cases {
		wg.Add(1)
		go func(idx int, tc *testcase.Case) {
			defer wg.Done()

			// Acquire semaphore slot.
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				resultsCh <- parallelResult{
					index: idx,
					err:   ctx.Err(),
				}
				return
			}

			resultsCh <- parallelResult{
				index:  idx,
				result: r.execute(ctx, tc, config),
			}
		}(i, c)
	}

	// Close channel after all goroutines complete.
	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	// Collect results in submission order.
	ordered := make([]*testcase.Result, len(cases))
	var firstErr error

	for pr := range resultsCh {
		if pr.err != nil && firstErr == nil {
			firstErr = pr.err
		}
		ordered[pr.index] = pr.result
	}

	// Filter out nil entries if the context was cancelled.
	results := make([]*testcase.Result, 0, len(cases))
	for _, res := range ordered {
		if res != nil {
			results = append(results, res)
		}
	}

	return results, firstErr
}
