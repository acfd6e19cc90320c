// Package events defines the lifecycle callback surface a BDD test
// runner drives while executing Gherkin features, together with the
// payload types those callbacks carry. Callbacks arrive strictly
// sequentially in document order; listeners are not required to be safe
// for concurrent use.
package events

import (
	"strings"

	"github.com/bdd-infra/bdd-acceptor/types"
)

// Feature identifies a feature being executed.
type Feature struct {
	Name string
	URI  string // source file path, informational only
}

// ScenarioKind distinguishes a plain scenario from a scenario outline
// (a templated scenario expanded by an examples table).
type ScenarioKind int

const (
	ScenarioPlain ScenarioKind = iota
	ScenarioOutline
)

// StepType classifies a step callback. Hooks travel through the same
// step callbacks as regular steps but never appear in the report; a
// failing before hook only contributes its failure cause.
type StepType int

const (
	StepRegular StepType = iota
	StepBeforeHook
	StepAfterHook
)

// Step describes a step at the moment its execution begins.
type Step struct {
	Name     string
	Location string // "file.feature:12", informational only
	Type     StepType
}

// StepResult carries the outcome of a finished step, scenario or
// outline row.
type StepResult struct {
	Status types.StepStatus
	Err    error
}

// Tag is a scenario tag as written in the feature file, including the
// leading "@".
type Tag struct {
	Name string
}

// TableRow is one row of a table: either an examples-table row of an
// outline or a data row inside a step's multiline argument.
type TableRow struct {
	Cells []string
}

// MultilineArg is the table or doc string attached to a step. Exactly
// one of DocString and Rows is populated; table rows are delivered
// through TableRowStarted callbacks while the argument is open.
type MultilineArg struct {
	DocString string
	Rows      []TableRow
}

// IsZero reports whether the argument carries no content.
func (a MultilineArg) IsZero() bool {
	return a.DocString == "" && len(a.Rows) == 0
}

// Render serializes the argument for attachment to a report step. Doc
// strings pass through verbatim; tables render one pipe-delimited line
// per row.
func (a MultilineArg) Render() string {
	if a.DocString != "" {
		return a.DocString
	}
	var b strings.Builder
	for _, row := range a.Rows {
		b.WriteString("| ")
		b.WriteString(strings.Join(row.Cells, " | "))
		b.WriteString(" |\n")
	}
	return b.String()
}

// Listener receives the runner's lifecycle callbacks. Method order
// mirrors a feature traversal: feature, scenario (kind, tags, name),
// steps and examples-table rows, teardown.
type Listener interface {
	FeatureStarted(f Feature)
	FeatureFinished()

	ScenarioStarted(kind ScenarioKind)
	TagsDelivered(tags []Tag)
	ScenarioNamed(name string)
	ScenarioFinished(res StepResult)

	ExamplesStarted()
	TableRowStarted(row TableRow)
	TableRowFinished(res StepResult)

	StepStarted(step Step)
	StepFinished(res StepResult)

	MultilineArgStarted(arg MultilineArg)
	MultilineArgFinished()

	// Embed attaches an arbitrary file produced during the run (for
	// example a screenshot) to the current test.
	Embed(sourcePath, mediaType, label string)
}
