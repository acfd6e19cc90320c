package acceptor

import (
	"github.com/bdd-infra/bdd-acceptor/metrics"
	"github.com/bdd-infra/bdd-acceptor/reporting"
)

// MetricsReporter is responsible for reporting metrics from session results.
type MetricsReporter interface {
	ReportResults(summary *reporting.RunSummary)
}

// DefaultMetricsReporter implements the MetricsReporter interface.
type DefaultMetricsReporter struct{}

// NewDefaultMetricsReporter creates a new DefaultMetricsReporter.
func NewDefaultMetricsReporter() *DefaultMetricsReporter {
	return &DefaultMetricsReporter{}
}

// ReportResults reports the session results to metrics systems.
func (r *DefaultMetricsReporter) ReportResults(summary *reporting.RunSummary) {
	result := "pass"
	if summary.Stats.HasFailures() {
		result = "fail"
	}
	metrics.RecordSession(
		summary.RunID,
		result,
		summary.Stats.Total,
		summary.Stats.Passed,
		summary.Stats.Failed+summary.Stats.Broken,
		summary.Duration,
	)
}
