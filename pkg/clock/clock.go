// Package clock provides an ambient "now" that tests can pin to a fixed instant.
//
// Code under test calls clock.Now and clock.Today instead of time.Now. Tests
// replace the ambient clock for a scope with WithFixed, or for the remainder of a
// test with Freeze. The values handed out are ordinary time.Time values, so they
// compare, format and subtract exactly like instants built with time.Date.
//
// The ambient clock is process-wide. Overrides must not overlap across
// goroutines; do not combine Freeze with t.Parallel.
package clock

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// FixedDateTime is a conventional instant for frozen-clock fixtures.
var FixedDateTime = time.Date(2020, time.October, 13, 2, 20, 0, 0, time.UTC)

// Clock reports the current instant and the current calendar day.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

// Real is the wall clock.
type Real struct{}

// Now returns time.Now().
func (Real) Now() time.Time {
	return time.Now()
}

// Today returns midnight of the current local day.
func (Real) Today() time.Time {
	return DateOf(time.Now())
}

// Fixed always reports the same instant.
type Fixed struct {
	at time.Time
}

// NewFixed returns a Clock pinned to at.
func NewFixed(at time.Time) *Fixed {
	return &Fixed{at: at}
}

// Now returns the pinned instant.
func (f *Fixed) Now() time.Time {
	return f.at
}

// Today returns midnight of the pinned instant's day, in its location.
func (f *Fixed) Today() time.Time {
	return DateOf(f.at)
}

// DateOf truncates t to midnight of its calendar day in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// binding はatomic.Valueに格納するためのラッパー
type binding struct {
	clock Clock
}

var current atomic.Value

func init() {
	current.Store(binding{clock: Real{}})
}

// Current returns the ambient clock.
func Current() Clock {
	return current.Load().(binding).clock
}

// Now returns the ambient clock's current instant.
func Now() time.Time {
	return Current().Now()
}

// Today returns the ambient clock's current day.
func Today() time.Time {
	return Current().Today()
}

// Set installs c as the ambient clock and returns a function that puts the
// previous clock back. Calling restore more than once has no further effect.
// A nil c installs the wall clock.
func Set(c Clock) (restore func()) {
	if c == nil {
		c = Real{}
	}
	prev := current.Swap(binding{clock: c}).(binding)

	var once sync.Once
	return func() {
		once.Do(func() {
			current.Store(prev)
		})
	}
}

// WithFixed runs fn with the ambient clock pinned to at. The previous clock is
// restored when fn returns or panics.
func WithFixed(at time.Time, fn func()) {
	restore := Set(NewFixed(at))
	defer restore()
	fn()
}

// Freeze pins the ambient clock to at until tb finishes.
func Freeze(tb testing.TB, at time.Time) Clock {
	tb.Helper()
	fixed := NewFixed(at)
	tb.Cleanup(Set(fixed))
	return fixed
}
