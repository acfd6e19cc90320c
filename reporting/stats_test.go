package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bdd-infra/bdd-acceptor/types"
)

func TestStatsAdd(t *testing.T) {
	var s Stats
	s.Add(types.ResultStatusPassed)
	s.Add(types.ResultStatusPassed)
	s.Add(types.ResultStatusFailed)
	s.Add(types.ResultStatusPending)
	s.Add(types.ResultStatusBroken)
	s.Add(types.ResultStatusCanceled)

	assert.Equal(t, Stats{
		Total:    6,
		Passed:   2,
		Failed:   1,
		Pending:  1,
		Broken:   1,
		Canceled: 1,
	}, s)
}

func TestStatsMerge(t *testing.T) {
	a := Stats{Total: 3, Passed: 2, Failed: 1}
	b := Stats{Total: 2, Broken: 1, Canceled: 1}
	a.Merge(b)
	assert.Equal(t, Stats{Total: 5, Passed: 2, Failed: 1, Broken: 1, Canceled: 1}, a)
}

func TestStatsPassRate(t *testing.T) {
	assert.Zero(t, Stats{}.PassRate())
	assert.Equal(t, 0.5, Stats{Total: 4, Passed: 2}.PassRate())
	assert.Equal(t, 1.0, Stats{Total: 3, Passed: 3}.PassRate())
}

func TestStatsHasFailures(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		expected bool
	}{
		{name: "empty run", stats: Stats{}, expected: false},
		{name: "all passed", stats: Stats{Total: 2, Passed: 2}, expected: false},
		{name: "pending only", stats: Stats{Total: 1, Pending: 1}, expected: false},
		{name: "canceled only", stats: Stats{Total: 1, Canceled: 1}, expected: false},
		{name: "failed", stats: Stats{Total: 1, Failed: 1}, expected: true},
		{name: "broken", stats: Stats{Total: 1, Broken: 1}, expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stats.HasFailures())
		})
	}
}
