package types

// Labels carries the report labels attached to a test when it starts.
// TestID, Issue and Severity come from scenario tags; Feature and Story
// are filled in from the current feature and scenario names.
type Labels struct {
	TestID   string
	Issue    string
	Severity Severity
	Feature  string
	Story    string
}

// IsZero reports whether no label has been set.
func (l Labels) IsZero() bool {
	return l == Labels{}
}
