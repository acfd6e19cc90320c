package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name string
		in   StepStatus
		want ResultStatus
	}{
		{name: "passed maps through", in: StepStatusPassed, want: ResultStatusPassed},
		{name: "failed maps through", in: StepStatusFailed, want: ResultStatusFailed},
		{name: "pending maps through", in: StepStatusPending, want: ResultStatusPending},
		{name: "undefined becomes broken", in: StepStatusUndefined, want: ResultStatusBroken},
		{name: "skipped becomes canceled", in: StepStatusSkipped, want: ResultStatusCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStatus(tt.in))
			// Mapping is deterministic; a second call gives the same answer.
			assert.Equal(t, tt.want, MapStatus(tt.in))
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in     string
		want   Severity
		wantOK bool
	}{
		{in: "blocker", want: SeverityBlocker, wantOK: true},
		{in: "critical", want: SeverityCritical, wantOK: true},
		{in: "normal", want: SeverityNormal, wantOK: true},
		{in: "minor", want: SeverityMinor, wantOK: true},
		{in: "trivial", want: SeverityTrivial, wantOK: true},
		{in: "TRIVIAL", want: SeverityTrivial, wantOK: true},
		{in: "Blocker", want: SeverityBlocker, wantOK: true},
		{in: "unknown", wantOK: false},
		{in: "", wantOK: false},
		{in: "major", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSeverity(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
