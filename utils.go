package acceptor

import (
	"fmt"
	"time"

	"github.com/bdd-infra/bdd-acceptor/types"
)

// getResultString returns a short string representing a test result
func getResultString(status types.ResultStatus) string {
	switch status {
	case types.ResultStatusPassed:
		return "✓ passed"
	case types.ResultStatusCanceled:
		return "- canceled"
	case types.ResultStatusPending:
		return "- pending"
	case types.ResultStatusBroken:
		return "! broken"
	default:
		return "✗ failed"
	}
}

// formatDuration renders a duration compactly for the summary table
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(10 * time.Millisecond).String()
}
