package reporting

import "github.com/bdd-infra/bdd-acceptor/types"

// Stats contains aggregated per-status counts for a run or suite.
type Stats struct {
	Total    int
	Passed   int
	Failed   int
	Pending  int
	Broken   int
	Canceled int
}

// Add counts one test outcome.
func (s *Stats) Add(status types.ResultStatus) {
	s.Total++
	switch status {
	case types.ResultStatusPassed:
		s.Passed++
	case types.ResultStatusFailed:
		s.Failed++
	case types.ResultStatusPending:
		s.Pending++
	case types.ResultStatusBroken:
		s.Broken++
	case types.ResultStatusCanceled:
		s.Canceled++
	}
}

// Merge adds another Stats into this one.
func (s *Stats) Merge(other Stats) {
	s.Total += other.Total
	s.Passed += other.Passed
	s.Failed += other.Failed
	s.Pending += other.Pending
	s.Broken += other.Broken
	s.Canceled += other.Canceled
}

// PassRate returns the fraction of passed tests, 0 when no test ran.
func (s Stats) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total)
}

// HasFailures reports whether any test resolved to failed or broken.
func (s Stats) HasFailures() bool {
	return s.Failed > 0 || s.Broken > 0
}
