package reporting

import (
	"time"

	"github.com/bdd-infra/bdd-acceptor/types"
)

// TestSummary is one finished test as seen by the summary sink.
type TestSummary struct {
	Name     string
	Status   types.ResultStatus
	Cause    error
	Duration time.Duration
}

// SuiteSummary groups the tests of one suite (feature).
type SuiteSummary struct {
	Name     string
	Tests    []TestSummary
	Stats    Stats
	Duration time.Duration
}

// RunSummary is the aggregate view of a whole replayed session.
type RunSummary struct {
	RunID    string
	Suites   []SuiteSummary
	Stats    Stats
	Duration time.Duration
}

// SummarySink is a Sink that aggregates the call stream into a
// RunSummary. It ignores steps and attachments; only suite and test
// boundaries matter for the summary.
type SummarySink struct {
	runID        string
	runStarted   time.Time
	suiteStarted time.Time
	testStarted  time.Time
	current      *SuiteSummary
	summary      RunSummary

	now func() time.Time
}

var _ Sink = (*SummarySink)(nil)

// NewSummarySink creates a SummarySink for the given run ID.
func NewSummarySink(runID string) *SummarySink {
	now := time.Now
	return &SummarySink{
		runID:      runID,
		runStarted: now(),
		summary:    RunSummary{RunID: runID},
		now:        now,
	}
}

func (s *SummarySink) StartSuite(name string) {
	s.current = &SuiteSummary{Name: name}
	s.suiteStarted = s.now()
}

func (s *SummarySink) StopSuite() {
	if s.current == nil {
		return
	}
	s.current.Duration = s.now().Sub(s.suiteStarted)
	s.summary.Stats.Merge(s.current.Stats)
	s.summary.Suites = append(s.summary.Suites, *s.current)
	s.current = nil
}

func (s *SummarySink) StartTest(name string, _ types.Labels) {
	if s.current == nil {
		// Tolerate a missing suite boundary rather than dropping tests.
		s.StartSuite("")
	}
	s.current.Tests = append(s.current.Tests, TestSummary{Name: name})
	s.testStarted = s.now()
}

func (s *SummarySink) StopTest(res types.Result) {
	if s.current == nil || len(s.current.Tests) == 0 {
		return
	}
	started := s.testStarted
	if !res.StartedAt.IsZero() {
		started = res.StartedAt
	}
	t := &s.current.Tests[len(s.current.Tests)-1]
	t.Status = res.Status
	t.Cause = res.Cause
	t.Duration = s.now().Sub(started)
	s.current.Stats.Add(res.Status)
}

func (s *SummarySink) StartStep(string) {}

func (s *SummarySink) StopStep(types.ResultStatus) {}

func (s *SummarySink) Attach(string, string, []byte) {}

// Summary finalizes and returns the aggregated run view.
func (s *SummarySink) Summary() *RunSummary {
	s.StopSuite()
	s.summary.Duration = s.now().Sub(s.runStarted)
	return &s.summary
}
