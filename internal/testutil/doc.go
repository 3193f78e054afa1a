// Package testutil provides test-only helpers and mocks shared by coincidence's own tests.
//
// This package is organized into the following sub-packages:
//
//   - helpers: environment guards, time parsing and an observable zap logger
//   - mocks: testify mocks for the logger and the Docker detector
//
// # Example
//
//	log, recorded := helpers.NewObservableLogger(zapcore.DebugLevel)
//	probe := dockerenv.NewProbe(dockerenv.WithLogger(log))
//	probe.IsDocker()
//	assert.Equal(t, 1, recorded.FilterMessage("no docker evidence found").Len())
package testutil
