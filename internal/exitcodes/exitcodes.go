// Package exitcodes defines the exit codes used by testkit.
//
// * Success (0): the report was generated
// * TestFailure (1): the test executable exited non-zero while listing or running tests
// * RuntimeErr (2): any other failure, e.g. a missing repository root or an unwritable directory
package exitcodes

import "testkit/internal/domain"

const (
	Success     = 0
	TestFailure = 1
	RuntimeErr  = 2
)

// FromError maps an error returned by a command to an exit code
func FromError(err error) int {
	switch {
	case err == nil:
		return Success
	case domain.IsExecutableError(err):
		return TestFailure
	default:
		return RuntimeErr
	}
}
