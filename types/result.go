package types

import "time"

// Result is the final outcome handed to the report sink when a test
// stops.
type Result struct {
	Status ResultStatus
	// Cause explains a non-passing status. A failed Result always
	// carries a cause; the correlator substitutes one when the runner
	// provided none.
	Cause error
	// StartedAt overrides the sink's own start timestamp. It is set
	// when steps were buffered before the test could be started, in
	// which case it holds the arrival time of the earliest buffered
	// step. Zero means the sink's own clock stands.
	StartedAt time.Time
}
