// Package helpers provides general test helper functions.
//
// # Available Helpers
//
//   - EnvGuard: set or unset environment variables, restored when the test ends
//   - MustParseTime / MustParseDate: hardcoded timestamps for clock fixtures
//   - ObservableLogger: a logger.Logger whose entries can be asserted on
//
// # Example
//
//	func TestSomething(t *testing.T) {
//	    env := helpers.NewEnvGuard(t)
//	    env.Set("COINCIDENCE_OUTPUT_FORMAT", "json")
//	    // restored automatically via t.Cleanup
//	}
package helpers
