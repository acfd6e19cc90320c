// Package reporting defines the capability boundary between the event
// correlator and whatever consumes the report call stream, plus
// in-memory sinks that aggregate a run for console output and metrics.
package reporting

import "github.com/bdd-infra/bdd-acceptor/types"

// Sink receives the correlator's report operations in valid call
// order: a test is always started before any of its steps, and steps
// never outlive their test. Implementations swallow their own I/O
// problems; the correlator never aborts the run on a sink failure.
type Sink interface {
	StartSuite(name string)
	StopSuite()
	StartTest(name string, labels types.Labels)
	StopTest(res types.Result)
	StartStep(name string)
	StopStep(status types.ResultStatus)
	// Attach records a file artifact on the currently open step, or on
	// the test itself when no step is open.
	Attach(name, mediaType string, content []byte)
}

// MultiSink fans every report operation out to an ordered list of
// sinks.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a MultiSink over the given sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) StartSuite(name string) {
	for _, s := range m.sinks {
		s.StartSuite(name)
	}
}

func (m *MultiSink) StopSuite() {
	for _, s := range m.sinks {
		s.StopSuite()
	}
}

func (m *MultiSink) StartTest(name string, labels types.Labels) {
	for _, s := range m.sinks {
		s.StartTest(name, labels)
	}
}

func (m *MultiSink) StopTest(res types.Result) {
	for _, s := range m.sinks {
		s.StopTest(res)
	}
}

func (m *MultiSink) StartStep(name string) {
	for _, s := range m.sinks {
		s.StartStep(name)
	}
}

func (m *MultiSink) StopStep(status types.ResultStatus) {
	for _, s := range m.sinks {
		s.StopStep(status)
	}
}

func (m *MultiSink) Attach(name, mediaType string, content []byte) {
	for _, s := range m.sinks {
		s.Attach(name, mediaType, content)
	}
}
