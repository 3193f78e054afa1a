// Package mocks provides testify/mock implementations of coincidence interfaces.
//
// # Available Mocks
//
//   - MockLogger: Mock for logger.Logger (also satisfies dockerenv.Logger)
//   - MockDetector: Mock for selectors.Detector
//
// # Best Practices
//
// 1. Always use the factory functions (e.g., NewMockLogger) to create mocks
// 2. Use WithDefaultBehavior() when the test does not care about log output
// 3. Use mock.MatchedBy for complex argument matching
//
// # Example
//
//	func TestSomething(t *testing.T) {
//	    d := mocks.NewMockDetector()
//	    d.On("IsDocker").Return(true)
//
//	    selectors.OnlyDockerWith(t, d)
//	    // ...
//	}
package mocks
