package types

import "strings"

// Severity is the report severity of a test, derived from scenario tags.
type Severity string

const (
	SeverityBlocker  Severity = "blocker"
	SeverityCritical Severity = "critical"
	SeverityNormal   Severity = "normal"
	SeverityMinor    Severity = "minor"
	SeverityTrivial  Severity = "trivial"
)

// ParseSeverity resolves a tag remainder into a Severity. Matching is
// case-insensitive; values outside the fixed set report ok=false and
// are ignored by callers rather than treated as errors.
func ParseSeverity(s string) (Severity, bool) {
	switch sev := Severity(strings.ToLower(s)); sev {
	case SeverityBlocker, SeverityCritical, SeverityNormal, SeverityMinor, SeverityTrivial:
		return sev, true
	default:
		return "", false
	}
}
