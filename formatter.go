package acceptor

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/bdd-infra/bdd-acceptor/reporting"
)

// ResultFormatter is responsible for formatting and displaying session results.
type ResultFormatter interface {
	FormatResults(summary *reporting.RunSummary) error
}

// ConsoleResultFormatter implements the ResultFormatter interface.
type ConsoleResultFormatter struct {
	logger log.Logger
}

// NewConsoleResultFormatter creates a new ConsoleResultFormatter.
func NewConsoleResultFormatter(logger log.Logger) *ConsoleResultFormatter {
	return &ConsoleResultFormatter{
		logger: logger,
	}
}

// FormatResults formats and displays the session results.
func (f *ConsoleResultFormatter) FormatResults(summary *reporting.RunSummary) error {
	f.logger.Info("Printing results...")
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("BDD Session Results (%s)", formatDuration(summary.Duration)))

	t.AppendHeader(table.Row{
		"Type", "Name", "Duration", "Tests", "Passed", "Failed", "Status", "Cause",
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Type", AutoMerge: true},
		{Name: "Name", WidthMax: 50, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Tests", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Cause", WidthMax: 40, WidthMaxEnforcer: text.WrapSoft},
	})

	for _, suite := range summary.Suites {
		t.AppendRow(table.Row{
			"Suite",
			suite.Name,
			formatDuration(suite.Duration),
			suite.Stats.Total,
			suite.Stats.Passed,
			suite.Stats.Failed + suite.Stats.Broken,
			suiteStatusString(suite.Stats),
			"",
		})

		for i, test := range suite.Tests {
			prefix := "├─"
			if i == len(suite.Tests)-1 {
				prefix = "└─"
			}
			cause := ""
			if test.Cause != nil {
				cause = test.Cause.Error()
			}
			t.AppendRow(table.Row{
				"",
				fmt.Sprintf("%s %s", prefix, test.Name),
				formatDuration(test.Duration),
				"1",
				boolToInt(test.Status == "passed"),
				boolToInt(test.Status == "failed" || test.Status == "broken"),
				getResultString(test.Status),
				cause,
			})
		}
		t.AppendSeparator()
	}

	t.AppendFooter(table.Row{
		"Run",
		summary.RunID,
		formatDuration(summary.Duration),
		summary.Stats.Total,
		summary.Stats.Passed,
		summary.Stats.Failed + summary.Stats.Broken,
		suiteStatusString(summary.Stats),
		"",
	})

	t.Render()
	return nil
}

func suiteStatusString(stats reporting.Stats) string {
	if stats.HasFailures() {
		return "✗ failed"
	}
	if stats.Total == 0 {
		return "- empty"
	}
	return "✓ passed"
}

// boolToInt converts a bool to a table cell count
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
