// Package replay decodes recorded runner sessions and drives an
// events.Listener with them. A session file contains one JSON object
// per line, each carrying an "event" discriminator plus that
// callback's payload fields.
package replay

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bdd-infra/bdd-acceptor/events"
	"github.com/bdd-infra/bdd-acceptor/types"
)

// Event is one recorded runner callback. Only the fields relevant to
// the event type are populated.
type Event struct {
	Type      string   `json:"event"`
	Name      string   `json:"name,omitempty"`
	URI       string   `json:"uri,omitempty"`
	Outline   bool     `json:"outline,omitempty"`
	Hook      string   `json:"hook,omitempty"` // "before" or "after" for hook steps
	Location  string   `json:"location,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Cells     []string `json:"cells,omitempty"`
	Status    string   `json:"status,omitempty"`
	Error     string   `json:"error,omitempty"`
	DocString string   `json:"doc_string,omitempty"`
	Source    string   `json:"source,omitempty"`
	MediaType string   `json:"media_type,omitempty"`
	Label     string   `json:"label,omitempty"`
}

// Recognized event discriminators.
const (
	EventFeatureStarted    = "feature_started"
	EventFeatureFinished   = "feature_finished"
	EventScenarioStarted   = "scenario_started"
	EventTagsDelivered     = "tags"
	EventScenarioNamed     = "scenario_named"
	EventScenarioFinished  = "scenario_finished"
	EventExamplesStarted   = "examples_started"
	EventTableRowStarted   = "table_row_started"
	EventTableRowFinished  = "table_row_finished"
	EventStepStarted       = "step_started"
	EventStepFinished      = "step_finished"
	EventMultilineStarted  = "multiline_started"
	EventMultilineFinished = "multiline_finished"
	EventEmbed             = "embed"
)

// Player replays recorded sessions against a listener.
type Player struct {
	log    log.Logger
	tracer trace.Tracer
}

// NewPlayer creates a Player.
func NewPlayer(logger log.Logger) *Player {
	if logger == nil {
		logger = log.New()
	}
	return &Player{
		log:    logger,
		tracer: otel.Tracer("session replay"),
	}
}

// ReplayFile replays the session recorded at path. It returns the
// number of events delivered.
func (p *Player) ReplayFile(ctx context.Context, path string, l events.Listener) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open events file: %w", err)
	}
	defer f.Close()
	return p.Replay(ctx, f, l)
}

// Replay decodes events from r and delivers them to l one at a time,
// preserving order. Decoding stops at the first malformed line or
// unknown event; everything delivered up to that point stands.
func (p *Player) Replay(ctx context.Context, r io.Reader, l events.Listener) (int, error) {
	ctx, span := p.tracer.Start(ctx, "replay session")
	defer span.End()

	var delivered int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return delivered, err
		}
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			return delivered, fmt.Errorf("line %d: malformed event: %w", line, err)
		}
		if err := dispatch(l, ev); err != nil {
			return delivered, fmt.Errorf("line %d: %w", line, err)
		}
		delivered++
	}
	if err := scanner.Err(); err != nil {
		return delivered, fmt.Errorf("failed to read events: %w", err)
	}

	span.SetAttributes(attribute.Int("events.delivered", delivered))
	p.log.Debug("Session replayed", "events", delivered)
	return delivered, nil
}

// dispatch translates one wire event into the matching listener call.
func dispatch(l events.Listener, ev Event) error {
	switch ev.Type {
	case EventFeatureStarted:
		l.FeatureStarted(events.Feature{Name: ev.Name, URI: ev.URI})
	case EventFeatureFinished:
		l.FeatureFinished()
	case EventScenarioStarted:
		kind := events.ScenarioPlain
		if ev.Outline {
			kind = events.ScenarioOutline
		}
		l.ScenarioStarted(kind)
	case EventTagsDelivered:
		tags := make([]events.Tag, 0, len(ev.Tags))
		for _, t := range ev.Tags {
			tags = append(tags, events.Tag{Name: t})
		}
		l.TagsDelivered(tags)
	case EventScenarioNamed:
		l.ScenarioNamed(ev.Name)
	case EventScenarioFinished:
		res, err := stepResult(ev)
		if err != nil {
			return err
		}
		l.ScenarioFinished(res)
	case EventExamplesStarted:
		l.ExamplesStarted()
	case EventTableRowStarted:
		l.TableRowStarted(events.TableRow{Cells: ev.Cells})
	case EventTableRowFinished:
		res, err := stepResult(ev)
		if err != nil {
			return err
		}
		l.TableRowFinished(res)
	case EventStepStarted:
		st, err := stepType(ev.Hook)
		if err != nil {
			return err
		}
		l.StepStarted(events.Step{Name: ev.Name, Location: ev.Location, Type: st})
	case EventStepFinished:
		res, err := stepResult(ev)
		if err != nil {
			return err
		}
		l.StepFinished(res)
	case EventMultilineStarted:
		l.MultilineArgStarted(events.MultilineArg{DocString: ev.DocString})
	case EventMultilineFinished:
		l.MultilineArgFinished()
	case EventEmbed:
		l.Embed(ev.Source, ev.MediaType, ev.Label)
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}

// stepResult validates and converts a wire status and error message.
// The decoder enforces the status enumeration so listeners downstream
// never see anything outside it.
func stepResult(ev Event) (events.StepResult, error) {
	status := types.StepStatus(ev.Status)
	switch status {
	case types.StepStatusPassed, types.StepStatusFailed, types.StepStatusPending,
		types.StepStatusSkipped, types.StepStatusUndefined:
	case "":
		status = types.StepStatusPassed
	default:
		return events.StepResult{}, fmt.Errorf("unknown status %q", ev.Status)
	}
	var err error
	if ev.Error != "" {
		err = errors.New(ev.Error)
	}
	return events.StepResult{Status: status, Err: err}, nil
}

func stepType(hook string) (events.StepType, error) {
	switch hook {
	case "":
		return events.StepRegular, nil
	case "before":
		return events.StepBeforeHook, nil
	case "after":
		return events.StepAfterHook, nil
	default:
		return 0, fmt.Errorf("unknown hook type %q", hook)
	}
}
