package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.assumptions/pkg/testcase"
)

func TestJSONReporter_GenerateReport(t *testing.T) {
	r := NewJSONReporter(false)
	data, err := r.GenerateReport(&testcase.Result{
		CaseID: "a",
		Status: testcase.StatusAborted,
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "a", decoded["case_id"])
	assert.Equal(t, "aborted", decoded["status"])
}

func TestJSONReporter_GenerateReport_Pretty(t *testing.T) {
	r := NewJSONReporter(true)
	data, err := r.GenerateReport(&testcase.Result{CaseID: "a"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n")
}

func TestJSONReporter_WriteSummary(t *testing.T) {
	r := NewJSONReporter(false)
	summary := BuildSummary(sampleResults())

	var buf bytes.Buffer
	require.NoError(t, r.WriteSummary(&buf, summary))

	var decoded Summary
	require.NoError(
		t, json.Unmarshal(buf.Bytes(), &decoded),
	)
	assert.Equal(t, summary.Total, decoded.Total)
	assert.Equal(t, summary.Aborted, decoded.Aborted)
}

func TestJSONReporter_SaveSummary(t *testing.T) {
	r := NewJSONReporter(true)
	summary := BuildSummary(sampleResults())

	path := filepath.Join(
		t.TempDir(), "out", "summary.json",
	)
	require.NoError(t, r.SaveSummary(summary, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 4, decoded.Total)
}
