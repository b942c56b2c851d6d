// Package report aggregates case results into run summaries and
// writes them as JSON or plain text. Aborted cases are reported
// in their own bucket: they are excluded from the pass-rate
// denominator because an unmet assumption is neither a pass nor
// a failure.
package report

import (
	"time"

	"digital.vasic.assumptions/pkg/testcase"
)

// Summary is an aggregated view of a run.
type Summary struct {
	GeneratedAt   time.Time     `json:"generated_at"`
	Cases         []CaseSummary `json:"cases"`
	Total         int           `json:"total"`
	Passed        int           `json:"passed"`
	Failed        int           `json:"failed"`
	Aborted       int           `json:"aborted"`
	Skipped       int           `json:"skipped"`
	TimedOut      int           `json:"timed_out"`
	Errored       int           `json:"errored"`
	TotalDuration time.Duration `json:"total_duration"`
	PassRate      float64       `json:"pass_rate"`
}

// CaseSummary is the per-case line of a run summary.
type CaseSummary struct {
	CaseID   testcase.ID   `json:"case_id"`
	CaseName string        `json:"case_name"`
	Status   string        `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// BuildSummary creates a run summary from case results.
func BuildSummary(results []*testcase.Result) *Summary {
	summary := &Summary{
		GeneratedAt: time.Now(),
		Cases:       make([]CaseSummary, 0, len(results)),
	}

	for _, r := range results {
		message := r.Message
		if message == "" {
			message = r.Error
		}

		summary.Cases = append(summary.Cases, CaseSummary{
			CaseID:   r.CaseID,
			CaseName: r.CaseName,
			Status:   r.Status,
			Message:  message,
			Duration: r.Duration,
		})

		summary.Total++
		summary.TotalDuration += r.Duration

		switch r.Status {
		case testcase.StatusPassed:
			summary.Passed++
		case testcase.StatusFailed:
			summary.Failed++
		case testcase.StatusAborted:
			summary.Aborted++
		case testcase.StatusSkipped:
			summary.Skipped++
		case testcase.StatusTimedOut:
			summary.TimedOut++
		default:
			summary.Errored++
		}
	}

	// Aborted and skipped cases do not count toward the pass
	// rate.
	counted := summary.Total - summary.Aborted - summary.Skipped
	if counted > 0 {
		summary.PassRate =
			float64(summary.Passed) / float64(counted)
	}

	return summary
}

// Clean returns true when the run had no failed, errored, or
// timed-out cases. A run consisting entirely of aborted cases
// is clean.
func (s *Summary) Clean() bool {
	return s.Failed == 0 && s.Errored == 0 && s.TimedOut == 0
}
