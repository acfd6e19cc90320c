// Package exitcodes defines the standard exit codes used by bdd-acceptor.
package exitcodes

// Exit code constants used by bdd-acceptor
// These constants define the exit codes that the application uses to indicate
// various states when it exits:
//
// * Success (0): Used when every replayed test passed
// * TestFailure (1): Used when the replayed session contains failed or broken tests
// * RuntimeErr (2): Used for runtime errors such as bad configuration or unreadable input
const (
	Success     = 0 // All tests pass
	TestFailure = 1 // Test failures
	RuntimeErr  = 2 // Runtime errors
)
