package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdd-infra/bdd-acceptor/types"
)

// newTestSummarySink returns a sink whose clock advances one second per
// call, so durations in assertions are deterministic.
func newTestSummarySink(t *testing.T) *SummarySink {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s := NewSummarySink("run-1")
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	s.runStarted = base
	return s
}

func TestSummarySinkAggregatesRun(t *testing.T) {
	s := newTestSummarySink(t)
	cause := errors.New("declined")

	s.StartSuite("Checkout")
	s.StartTest("pay with card", types.Labels{})
	s.StopTest(types.Result{Status: types.ResultStatusPassed})
	s.StartTest("pay with points", types.Labels{})
	s.StopTest(types.Result{Status: types.ResultStatusFailed, Cause: cause})
	s.StopSuite()

	s.StartSuite("Refunds")
	s.StartTest("refund", types.Labels{})
	s.StopTest(types.Result{Status: types.ResultStatusCanceled})
	s.StopSuite()

	summary := s.Summary()
	assert.Equal(t, "run-1", summary.RunID)
	require.Len(t, summary.Suites, 2)

	checkout := summary.Suites[0]
	assert.Equal(t, "Checkout", checkout.Name)
	require.Len(t, checkout.Tests, 2)
	assert.Equal(t, "pay with card", checkout.Tests[0].Name)
	assert.Equal(t, types.ResultStatusPassed, checkout.Tests[0].Status)
	assert.Equal(t, types.ResultStatusFailed, checkout.Tests[1].Status)
	assert.Same(t, cause, checkout.Tests[1].Cause)
	assert.Equal(t, Stats{Total: 2, Passed: 1, Failed: 1}, checkout.Stats)

	assert.Equal(t, Stats{Total: 3, Passed: 1, Failed: 1, Canceled: 1}, summary.Stats)
	assert.True(t, summary.Stats.HasFailures())
	assert.Positive(t, summary.Duration)
}

func TestSummarySinkStartedAtOverride(t *testing.T) {
	s := newTestSummarySink(t)

	s.StartSuite("f")
	s.StartTest("bg", types.Labels{})
	// A test whose first step ran long before the test was started
	// reports its real start time through the result.
	started := time.Date(2026, 3, 1, 11, 59, 0, 0, time.UTC)
	s.StopTest(types.Result{Status: types.ResultStatusPassed, StartedAt: started})

	summary := s.Summary()
	require.Len(t, summary.Suites, 1)
	require.Len(t, summary.Suites[0].Tests, 1)
	assert.Greater(t, summary.Suites[0].Tests[0].Duration, time.Minute)
}

func TestSummarySinkToleratesMissingSuite(t *testing.T) {
	s := newTestSummarySink(t)

	s.StartTest("orphan", types.Labels{})
	s.StopTest(types.Result{Status: types.ResultStatusPassed})

	summary := s.Summary()
	require.Len(t, summary.Suites, 1)
	assert.Empty(t, summary.Suites[0].Name)
	assert.Equal(t, 1, summary.Stats.Total)
}

func TestSummarySinkIgnoresStepsAndAttachments(t *testing.T) {
	s := newTestSummarySink(t)

	s.StartSuite("f")
	s.StartTest("t", types.Labels{})
	s.StartStep("step")
	s.Attach("Doc string", "text/plain", []byte("x"))
	s.StopStep(types.ResultStatusPassed)
	s.StopTest(types.Result{Status: types.ResultStatusPassed})

	summary := s.Summary()
	assert.Equal(t, 1, summary.Stats.Total)
	assert.Equal(t, 1, summary.Stats.Passed)
}

func TestSummarySinkStopTestWithoutStart(t *testing.T) {
	s := newTestSummarySink(t)
	s.StopTest(types.Result{Status: types.ResultStatusPassed})
	assert.Zero(t, s.Summary().Stats.Total)
}
