package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"digital.vasic.assumptions/pkg/testcase"
)

// JSONReporter generates JSON reports from case results.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// GenerateReport creates a JSON report for a single case result.
func (r *JSONReporter) GenerateReport(
	result *testcase.Result,
) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// GenerateSummary creates a JSON document for a run summary.
func (r *JSONReporter) GenerateSummary(
	summary *Summary,
) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}

// WriteSummary writes a run summary as JSON to w.
func (r *JSONReporter) WriteSummary(
	w io.Writer,
	summary *Summary,
) error {
	data, err := r.GenerateSummary(summary)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf(
			"failed to write summary: %w", err,
		)
	}
	return nil
}

// SaveSummary writes a run summary as JSON to the given path,
// creating parent directories as needed.
func (r *JSONReporter) SaveSummary(
	summary *Summary,
	path string,
) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf(
			"failed to create report directory: %w", err,
		)
	}

	data, err := r.GenerateSummary(summary)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf(
			"failed to write summary file: %w", err,
		)
	}
	return nil
}
