package report

import (
	"fmt"
	"strings"
)

// Render produces a plain-text table of a run summary suitable
// for terminal output.
func Render(summary *Summary) string {
	var b strings.Builder

	b.WriteString("RUN SUMMARY\n")
	b.WriteString(strings.Repeat("-", 60))
	b.WriteString("\n")

	for _, c := range summary.Cases {
		line := fmt.Sprintf(
			"%-30s %-9s %8.2fs",
			truncate(string(c.CaseID), 30),
			c.Status,
			c.Duration.Seconds(),
		)
		if c.Message != "" {
			line += "  " + c.Message
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("-", 60))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(
		"total=%d passed=%d failed=%d aborted=%d skipped=%d "+
			"timed_out=%d errored=%d pass_rate=%.1f%%\n",
		summary.Total, summary.Passed, summary.Failed,
		summary.Aborted, summary.Skipped, summary.TimedOut,
		summary.Errored, summary.PassRate*100,
	))

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
