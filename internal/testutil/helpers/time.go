package helpers

import (
	"testing"
	"time"
)

// MustParseTime parses an RFC3339 timestamp and fails the test on error.
func MustParseTime(tb testing.TB, s string) time.Time {
	tb.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		tb.Fatalf("failed to parse time %q: %v", s, err)
	}
	return parsed
}

// MustParseDate parses a YYYY-MM-DD date as midnight UTC and fails the test on error.
func MustParseDate(tb testing.TB, s string) time.Time {
	tb.Helper()
	parsed, err := time.Parse(time.DateOnly, s)
	if err != nil {
		tb.Fatalf("failed to parse date %q: %v", s, err)
	}
	return parsed
}
