// Package allure persists the report call stream as Allure-style
// result artifacts: one JSON file per test, one container file per
// suite, and a uuid-named file per attachment.
package allure

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"

	"github.com/bdd-infra/bdd-acceptor/logging"
	"github.com/bdd-infra/bdd-acceptor/reporting"
	"github.com/bdd-infra/bdd-acceptor/types"
)

// Writer implements reporting.Sink by writing result artifacts to a
// directory. Each artifact write opens, writes and closes its file
// within the same call. Writer methods never fail the run; the first
// write error is retained and surfaced by Close.
type Writer struct {
	dir string
	log log.Logger

	suiteName  string
	suiteUUID  string
	suiteStart time.Time
	children   []string

	test *testResult
	open []*stepResult // currently running steps, innermost last

	firstErr error

	newID func() string
	now   func() time.Time
}

var _ reporting.Sink = (*Writer)(nil)

// WriterConfig configures a Writer.
type WriterConfig struct {
	Dir   string // artifact output directory
	Clean bool   // remove the directory's previous content first
	Log   log.Logger
}

// NewWriter prepares the output directory and returns a Writer over
// it.
func NewWriter(cfg WriterConfig) (*Writer, error) {
	if cfg.Dir == "" {
		return nil, errors.New("output directory is required")
	}
	if cfg.Log == nil {
		cfg.Log = log.New()
	}
	if err := logging.PrepareResultsDir(cfg.Dir, cfg.Clean); err != nil {
		return nil, err
	}
	return &Writer{
		dir:   cfg.Dir,
		log:   cfg.Log,
		newID: uuid.NewString,
		now:   time.Now,
	}, nil
}

func (w *Writer) StartSuite(name string) {
	w.suiteName = name
	w.suiteUUID = w.newID()
	w.suiteStart = w.now()
	w.children = nil
}

func (w *Writer) StopSuite() {
	if w.suiteUUID == "" {
		return
	}
	container := containerResult{
		UUID:     w.suiteUUID,
		Name:     w.suiteName,
		Children: w.children,
		Start:    millis(w.suiteStart),
		Stop:     millis(w.now()),
	}
	w.writeJSON(w.suiteUUID+"-container.json", container)
	w.suiteUUID = ""
	w.children = nil
}

func (w *Writer) StartTest(name string, labels types.Labels) {
	w.test = &testResult{
		UUID:   w.newID(),
		Name:   name,
		Labels: buildLabels(w.suiteName, labels),
		Start:  millis(w.now()),
	}
	w.children = append(w.children, w.test.UUID)
	w.open = nil
}

func (w *Writer) StopTest(res types.Result) {
	if w.test == nil {
		w.log.Warn("Test stop without a started test")
		return
	}
	// A step whose stop never arrived inherits the test's status.
	for _, s := range w.open {
		s.Status = string(res.Status)
		s.Stop = millis(w.now())
	}
	w.open = nil

	w.test.Status = string(res.Status)
	if res.Cause != nil {
		w.test.StatusDetails = &statusDetails{Message: res.Cause.Error()}
	}
	if !res.StartedAt.IsZero() {
		w.test.Start = millis(res.StartedAt)
	}
	w.test.Stop = millis(w.now())
	w.writeJSON(w.test.UUID+"-result.json", w.test)
	w.test = nil
}

func (w *Writer) StartStep(name string) {
	if w.test == nil {
		w.log.Warn("Step start without a started test", "step", name)
		return
	}
	s := &stepResult{Name: name, Start: millis(w.now())}
	w.test.Steps = append(w.test.Steps, s)
	w.open = append(w.open, s)
}

func (w *Writer) StopStep(status types.ResultStatus) {
	if len(w.open) == 0 {
		w.log.Warn("Step stop without a running step")
		return
	}
	s := w.open[len(w.open)-1]
	w.open = w.open[:len(w.open)-1]
	s.Status = string(status)
	s.Stop = millis(w.now())
}

func (w *Writer) Attach(name, mediaType string, content []byte) {
	if w.test == nil {
		w.log.Warn("Attachment without a started test", "name", name)
		return
	}
	if isText(mediaType) {
		content = []byte(logging.CleanAttachmentText(string(content)))
	}
	source := w.newID() + "-attachment" + extension(mediaType)
	if err := os.WriteFile(filepath.Join(w.dir, source), content, 0644); err != nil {
		w.recordErr(fmt.Errorf("failed to write attachment %s: %w", source, err))
		return
	}
	att := attachment{Name: name, Source: source, Type: mediaType}
	if len(w.open) > 0 {
		s := w.open[len(w.open)-1]
		s.Attachments = append(s.Attachments, att)
		return
	}
	w.test.Attachments = append(w.test.Attachments, att)
}

// Close reports the first write error encountered, if any.
func (w *Writer) Close() error {
	return w.firstErr
}

func (w *Writer) writeJSON(name string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		w.recordErr(fmt.Errorf("failed to marshal %s: %w", name, err))
		return
	}
	if err := os.WriteFile(filepath.Join(w.dir, name), data, 0644); err != nil {
		w.recordErr(fmt.Errorf("failed to write %s: %w", name, err))
	}
}

func (w *Writer) recordErr(err error) {
	w.log.Error("Artifact write failed", "err", err)
	if w.firstErr == nil {
		w.firstErr = err
	}
}

func isText(mediaType string) bool {
	return mediaType == "" ||
		strings.HasPrefix(mediaType, "text/") ||
		mediaType == "application/json"
}

func extension(mediaType string) string {
	switch mediaType {
	case "application/json":
		return ".json"
	case "text/csv":
		return ".csv"
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "", "text/plain":
		return ".txt"
	default:
		return ".bin"
	}
}

func millis(t time.Time) int64 {
	return t.UnixMilli()
}
