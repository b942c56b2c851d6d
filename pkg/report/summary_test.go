package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.assumptions/pkg/testcase"
)

func sampleResults() []*testcase.Result {
	return []*testcase.Result{
		{
			CaseID:   "a",
			CaseName: "a",
			Status:   testcase.StatusPassed,
			Duration: 2 * time.Second,
		},
		{
			CaseID:   "b",
			CaseName: "b",
			Status:   testcase.StatusAborted,
			Message:  "Assumption failed: no docker",
			Duration: time.Second,
		},
		{
			CaseID:   "c",
			CaseName: "c",
			Status:   testcase.StatusFailed,
			Error:    "check failed",
			Duration: 3 * time.Second,
		},
		{
			CaseID:   "d",
			CaseName: "d",
			Status:   testcase.StatusPassed,
			Duration: time.Second,
		},
	}
}

func TestBuildSummary_Counts(t *testing.T) {
	s := BuildSummary(sampleResults())

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 1, s.Aborted)
	assert.Equal(t, 0, s.Skipped)
	assert.Equal(t, 7*time.Second, s.TotalDuration)
}

func TestBuildSummary_PassRateExcludesAborted(t *testing.T) {
	s := BuildSummary(sampleResults())

	// 2 passed out of 3 counted (aborted excluded).
	assert.InDelta(t, 2.0/3.0, s.PassRate, 1e-9)
}

func TestBuildSummary_AllAborted(t *testing.T) {
	s := BuildSummary([]*testcase.Result{
		{CaseID: "a", Status: testcase.StatusAborted},
		{CaseID: "b", Status: testcase.StatusAborted},
	})

	assert.Equal(t, 2, s.Aborted)
	assert.Zero(t, s.PassRate)
	assert.True(t, s.Clean())
}

func TestBuildSummary_Empty(t *testing.T) {
	s := BuildSummary(nil)
	assert.Equal(t, 0, s.Total)
	assert.Zero(t, s.PassRate)
	assert.True(t, s.Clean())
}

func TestBuildSummary_AbortMessageCarriedOver(t *testing.T) {
	s := BuildSummary(sampleResults())

	require.Len(t, s.Cases, 4)
	assert.Equal(
		t, "Assumption failed: no docker", s.Cases[1].Message,
	)
	assert.Equal(t, "check failed", s.Cases[2].Message)
}

func TestSummary_Clean(t *testing.T) {
	tests := []struct {
		name     string
		summary  Summary
		expected bool
	}{
		{"empty", Summary{}, true},
		{"only passed", Summary{Passed: 3}, true},
		{"aborted only", Summary{Aborted: 2}, true},
		{"failed", Summary{Failed: 1}, false},
		{"errored", Summary{Errored: 1}, false},
		{"timed out", Summary{TimedOut: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(
				t, tt.expected, tt.summary.Clean(),
			)
		})
	}
}
