package helpers

import (
	"os"
	"testing"
)

// EnvGuard manages environment variables during tests.
// Original values are restored when the test finishes, or earlier via Restore.
type EnvGuard struct {
	tb       testing.TB
	original map[string]*string
}

// NewEnvGuard creates an EnvGuard that restores the environment through tb.Cleanup.
func NewEnvGuard(tb testing.TB) *EnvGuard {
	tb.Helper()
	g := &EnvGuard{
		tb:       tb,
		original: make(map[string]*string),
	}
	tb.Cleanup(g.Restore)
	return g
}

// save records the value of key the first time it is touched.
// A nil entry means the variable was not set at all.
func (g *EnvGuard) save(key string) {
	if _, saved := g.original[key]; saved {
		return
	}
	if value, ok := os.LookupEnv(key); ok {
		g.original[key] = &value
	} else {
		g.original[key] = nil
	}
}

// Set sets an environment variable.
func (g *EnvGuard) Set(key, value string) {
	g.tb.Helper()
	g.save(key)
	if err := os.Setenv(key, value); err != nil {
		g.tb.Fatalf("failed to set env var %s: %v", key, err)
	}
}

// Unset removes an environment variable.
func (g *EnvGuard) Unset(key string) {
	g.tb.Helper()
	g.save(key)
	if err := os.Unsetenv(key); err != nil {
		g.tb.Fatalf("failed to unset env var %s: %v", key, err)
	}
}

// Restore puts every touched variable back, distinguishing "empty" from "unset".
func (g *EnvGuard) Restore() {
	for key, value := range g.original {
		if value == nil {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, *value)
		}
	}
	g.original = make(map[string]*string)
}
