// Package acceptor correlates a BDD runner's lifecycle callbacks into
// ordered report-builder calls and persists the resulting artifacts.
package acceptor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bdd-infra/bdd-acceptor/allure"
	"github.com/bdd-infra/bdd-acceptor/replay"
	"github.com/bdd-infra/bdd-acceptor/reporting"
)

// Acceptor wires the correlator, the artifact writer and the replay
// player together for one session.
type Acceptor struct {
	config  *Config
	version string
	runID   string

	writer     *allure.Writer
	summary    *reporting.SummarySink
	correlator *Correlator
	executor   SessionExecutor
	formatter  ResultFormatter
	reporter   MetricsReporter
}

// New creates an Acceptor from the given configuration.
func New(config *Config, version string) (*Acceptor, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Log.Debug("Creating acceptor with config",
		"eventsFile", config.EventsFile,
		"outputDir", config.OutputDir,
		"cleanResults", config.CleanResults)

	runID := uuid.NewString()

	writer, err := allure.NewWriter(allure.WriterConfig{
		Dir:   config.OutputDir,
		Clean: config.CleanResults,
		Log:   config.Log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact writer: %w", err)
	}
	summary := reporting.NewSummarySink(runID)

	correlator, err := NewCorrelator(CorrelatorConfig{
		Sink:           reporting.NewMultiSink(writer, summary),
		Log:            config.Log,
		TMSPrefix:      config.TMSPrefix,
		IssuePrefix:    config.IssuePrefix,
		SeverityPrefix: config.SeverityPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create correlator: %w", err)
	}

	player := replay.NewPlayer(config.Log)
	config.Log.Info("acceptor.New: created artifact writer and correlator", "run_id", runID)

	return &Acceptor{
		config:     config,
		version:    version,
		runID:      runID,
		writer:     writer,
		summary:    summary,
		correlator: correlator,
		executor:   NewDefaultSessionExecutor(player, config.EventsFile, config.Log),
		formatter:  NewConsoleResultFormatter(config.Log),
		reporter:   NewDefaultMetricsReporter(),
	}, nil
}

// Run replays the configured session, prints the summary and reports
// metrics. It returns a TestFailureError when the session contains
// failed or broken tests, and a RuntimeError for operational problems.
func (a *Acceptor) Run(ctx context.Context) error {
	if err := a.executor.Execute(ctx, a.correlator); err != nil {
		return NewRuntimeError(fmt.Errorf("failed to replay session: %w", err))
	}
	if err := a.writer.Close(); err != nil {
		return NewRuntimeError(fmt.Errorf("failed to write artifacts: %w", err))
	}

	summary := a.summary.Summary()
	if err := a.formatter.FormatResults(summary); err != nil {
		a.config.Log.Error("Error formatting results", "error", err)
	}
	a.reporter.ReportResults(summary)

	if summary.Stats.HasFailures() {
		return NewTestFailureError(fmt.Sprintf("%d of %d tests failed",
			summary.Stats.Failed+summary.Stats.Broken, summary.Stats.Total))
	}
	a.config.Log.Info("Session passed", "run_id", a.runID, "tests", summary.Stats.Total)
	return nil
}

// RunID returns the unique identifier of this session run.
func (a *Acceptor) RunID() string {
	return a.runID
}
