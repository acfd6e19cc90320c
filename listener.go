package acceptor

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"

	"github.com/bdd-infra/bdd-acceptor/events"
	"github.com/bdd-infra/bdd-acceptor/reporting"
	"github.com/bdd-infra/bdd-acceptor/types"
)

// UnnamedScenario is the display name used when a scenario has a blank
// or absent name.
const UnnamedScenario = "Unnamed scenario"

// errUndefinedSteps is substituted when a test resolves to failed but
// neither a hook nor a step produced an explicit cause, so a failed
// result is never reported without an explanation.
var errUndefinedSteps = errors.New("Some steps were undefined")

// phase tracks where in a feature traversal the correlator currently
// is. The runner's callbacks overlap ambiguously (an examples-table row
// and a step's data-table row arrive through the same callback), so
// every handler that cares switches on this explicitly.
type phase int

const (
	phaseIdle phase = iota
	phaseScenario      // inside a scenario or outline template
	phaseOutlineHeader // examples section open, header row not yet seen
	phaseOutlineRow    // examples section open, header row consumed
	phaseMultiline     // inside a step's multiline argument
)

// pendingStep is a step callback received before the scenario's name
// was known. Entries are appended once and completed in place when the
// matching result arrives, so a step whose result never comes cannot
// shift the pairing of later steps.
type pendingStep struct {
	step   events.Step
	arg    events.MultilineArg
	seenAt time.Time
	result *events.StepResult // nil until the step finishes
}

// Correlator consumes a runner's lifecycle callbacks and produces an
// ordered stream of report operations against a reporting.Sink. It
// resolves the one genuine ordering mismatch between the two sides:
// background steps execute, and report their results, before the
// scenario's name is known, while the sink requires a test to be
// started before any of its steps.
//
// The correlator owns no thread of control and is not safe for
// concurrent use; the runner delivers callbacks one at a time.
type Correlator struct {
	sink reporting.Sink
	log  log.Logger

	tmsPrefix      string
	issuePrefix    string
	severityPrefix string

	phase     phase
	argPhase  phase // phase to restore when a multiline argument closes
	curArg    events.MultilineArg
	outline   bool
	curStep   events.StepType
	stepName  string
	startedAt time.Time // arrival time of the earliest deferred step

	featureName  string
	scenarioName string // empty until the test has been started
	outlineBase  string

	pending []*pendingStep
	labels  types.Labels
	hookErr error

	now func() time.Time
}

var _ events.Listener = (*Correlator)(nil)

// CorrelatorConfig configures a Correlator.
type CorrelatorConfig struct {
	Sink           reporting.Sink
	Log            log.Logger
	TMSPrefix      string
	IssuePrefix    string
	SeverityPrefix string
}

// NewCorrelator creates a Correlator writing to the configured sink.
// Empty tag prefixes fall back to the package defaults.
func NewCorrelator(cfg CorrelatorConfig) (*Correlator, error) {
	if cfg.Sink == nil {
		return nil, errors.New("report sink is required")
	}
	if cfg.Log == nil {
		cfg.Log = log.New()
	}
	if cfg.TMSPrefix == "" {
		cfg.TMSPrefix = DefaultTMSPrefix
	}
	if cfg.IssuePrefix == "" {
		cfg.IssuePrefix = DefaultIssuePrefix
	}
	if cfg.SeverityPrefix == "" {
		cfg.SeverityPrefix = DefaultSeverityPrefix
	}

	return &Correlator{
		sink:           cfg.Sink,
		log:            cfg.Log,
		tmsPrefix:      cfg.TMSPrefix,
		issuePrefix:    cfg.IssuePrefix,
		severityPrefix: cfg.SeverityPrefix,
		now:            time.Now,
	}, nil
}

// FeatureStarted opens a report suite named after the feature.
func (c *Correlator) FeatureStarted(f events.Feature) {
	c.featureName = f.Name
	c.log.Debug("Feature started", "name", f.Name, "uri", f.URI)
	c.sink.StartSuite(f.Name)
}

// FeatureFinished closes the current report suite.
func (c *Correlator) FeatureFinished() {
	c.log.Debug("Feature finished", "name", c.featureName)
	c.sink.StopSuite()
}

// ScenarioStarted records whether the upcoming scenario is an outline.
// The test itself is not started yet; that waits for the name (plain
// scenarios) or the first examples data row (outlines).
func (c *Correlator) ScenarioStarted(kind events.ScenarioKind) {
	c.outline = kind == events.ScenarioOutline
	c.phase = phaseScenario
}

// TagsDelivered extracts the TMS, issue and severity labels from the
// scenario's tags.
func (c *Correlator) TagsDelivered(tags []events.Tag) {
	c.labels = extractLabels(tags, c.tmsPrefix, c.issuePrefix, c.severityPrefix)
	c.log.Debug("Scenario tags extracted",
		"testId", c.labels.TestID,
		"issue", c.labels.Issue,
		"severity", c.labels.Severity)
}

// ScenarioNamed resolves the display name of the current scenario. For
// a plain scenario this starts the test immediately; for an outline the
// resolved name only becomes the base that each examples row extends.
func (c *Correlator) ScenarioNamed(name string) {
	resolved := resolveScenarioName(name)
	if c.outline {
		c.outlineBase = resolved
		return
	}
	c.startTest(resolved)
}

// ScenarioFinished stops the current test. For outlines the last row
// has normally already stopped it, in which case only the outline state
// is reset.
func (c *Correlator) ScenarioFinished(res events.StepResult) {
	if c.scenarioName != "" {
		c.stopTest(res)
	}
	c.outline = false
	c.outlineBase = ""
	c.phase = phaseIdle
}

// ExamplesStarted marks the beginning of an outline's examples table.
// The next row is the header and carries no data.
func (c *Correlator) ExamplesStarted() {
	c.phase = phaseOutlineHeader
}

// TableRowStarted handles one table row. Rows inside a multiline
// argument belong to the current step's data table; the first row after
// an examples section opens is the column-name header; every later
// examples row starts one test of the outline.
func (c *Correlator) TableRowStarted(row events.TableRow) {
	switch c.phase {
	case phaseMultiline:
		c.curArg.Rows = append(c.curArg.Rows, row)
	case phaseOutlineHeader:
		c.phase = phaseOutlineRow
	case phaseOutlineRow:
		c.startTest(fmt.Sprintf("%s: %s", c.outlineBase, strings.Join(row.Cells, " | ")))
	case phaseIdle, phaseScenario:
		// A row outside any examples or argument span carries nothing
		// the report cares about.
	}
}

// TableRowFinished stops the test started by an examples data row.
func (c *Correlator) TableRowFinished(res events.StepResult) {
	if c.phase != phaseOutlineRow || c.scenarioName == "" {
		return
	}
	c.stopTest(res)
}

// StepStarted reports a step start, or buffers it when the owning
// test cannot be started yet. Hook pseudo-steps never reach the report.
func (c *Correlator) StepStarted(step events.Step) {
	c.curStep = step.Type
	if step.Type != events.StepRegular {
		return
	}
	if c.scenarioName == "" {
		c.pending = append(c.pending, &pendingStep{step: step, seenAt: c.now()})
		c.log.Debug("Deferred step until test start", "step", step.Name, "queued", len(c.pending))
		return
	}
	c.stepName = step.Name
	c.sink.StartStep(step.Name)
}

// StepFinished reports a step stop, completes the matching buffered
// entry, or captures a before-hook failure cause.
func (c *Correlator) StepFinished(res events.StepResult) {
	switch c.curStep {
	case events.StepBeforeHook:
		if res.Err != nil && c.hookErr == nil {
			c.hookErr = res.Err
			c.log.Debug("Captured before-hook failure", "err", res.Err)
		}
		return
	case events.StepAfterHook:
		return
	case events.StepRegular:
	}
	if c.scenarioName == "" {
		if n := len(c.pending); n > 0 && c.pending[n-1].result == nil {
			c.pending[n-1].result = &res
		}
		return
	}
	c.sink.StopStep(types.MapStatus(res.Status))
}

// MultilineArgStarted opens a step's table or doc-string argument.
// Rows delivered while the argument is open accumulate into it instead
// of being mistaken for examples rows.
func (c *Correlator) MultilineArgStarted(arg events.MultilineArg) {
	c.argPhase = c.phase
	c.phase = phaseMultiline
	c.curArg = arg
}

// MultilineArgFinished closes the argument span. The collected content
// is attached to the current report step, or merged into the most
// recently buffered step when the test has not started yet.
func (c *Correlator) MultilineArgFinished() {
	c.phase = c.argPhase
	arg := c.curArg
	c.curArg = events.MultilineArg{}
	if arg.IsZero() {
		return
	}
	if c.scenarioName == "" {
		if n := len(c.pending); n > 0 {
			c.pending[n-1].arg = arg
		}
		return
	}
	c.attachArg(arg)
}

// Embed attaches an arbitrary file produced by the run to the current
// test. Reading happens here so the sink only ever sees content.
func (c *Correlator) Embed(sourcePath, mediaType, label string) {
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		c.log.Error("Failed to read embedded attachment", "path", sourcePath, "err", err)
		return
	}
	c.sink.Attach(label, mediaType, content)
}

// startTest starts the report test and replays every buffered step in
// arrival order: each is started, its stored argument attached, and,
// when its result already arrived, stopped immediately. A buffered step
// still awaiting its result stays open and is stopped by the live
// StepFinished callback.
func (c *Correlator) startTest(name string) {
	c.scenarioName = name
	c.labels.Feature = c.featureName
	c.labels.Story = name
	c.sink.StartTest(name, c.labels)

	if len(c.pending) > 0 {
		c.startedAt = c.pending[0].seenAt
		c.log.Debug("Replaying deferred steps", "test", name, "count", len(c.pending))
	}
	for _, p := range c.pending {
		c.stepName = p.step.Name
		c.sink.StartStep(p.step.Name)
		if !p.arg.IsZero() {
			c.attachArg(p.arg)
		}
		if p.result != nil {
			c.sink.StopStep(types.MapStatus(p.result.Status))
		}
	}
	c.pending = nil
}

// stopTest computes the final result and resets all per-test state. A
// before-hook failure outranks the scenario's own cause; a failed
// status with no cause at all gets the undefined-steps placeholder.
func (c *Correlator) stopTest(res events.StepResult) {
	status := types.MapStatus(res.Status)
	cause := res.Err
	if c.hookErr != nil {
		cause = c.hookErr
	}
	if status == types.ResultStatusFailed && cause == nil {
		cause = errUndefinedSteps
	}

	c.sink.StopTest(types.Result{
		Status:    status,
		Cause:     cause,
		StartedAt: c.startedAt,
	})
	c.log.Debug("Test stopped", "test", c.scenarioName, "status", status)

	c.scenarioName = ""
	c.stepName = ""
	c.labels = types.Labels{}
	c.pending = nil
	c.hookErr = nil
	c.startedAt = time.Time{}
	c.curStep = events.StepRegular
}

// attachArg serializes a multiline argument and attaches it to the
// current report step.
func (c *Correlator) attachArg(arg events.MultilineArg) {
	name := "Data table"
	if arg.DocString != "" {
		name = "Doc string"
	}
	c.sink.Attach(name, "text/plain", []byte(arg.Render()))
}

// resolveScenarioName normalizes a scenario's display name: blank names
// become the fixed placeholder and embedded newlines flatten to single
// spaces so the name fits one report line.
func resolveScenarioName(name string) string {
	if strings.TrimSpace(name) == "" {
		return UnnamedScenario
	}
	return newlineFlattener.Replace(name)
}

var newlineFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
