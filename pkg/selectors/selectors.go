// Package selectors skips tests that cannot run on the current platform.
//
// Each helper calls tb.Skipf when its condition does not hold, so it belongs at
// the top of a test:
//
//	func TestSymlinks(t *testing.T) {
//	    selectors.NotWindows(t)
//	    ...
//	}
package selectors

import (
	"runtime"
	"testing"

	"github.com/douhashi/coincidence/pkg/dockerenv"
)

// Detector reports whether the process runs inside Docker.
type Detector interface {
	IsDocker() bool
}

// goos は判定に使うOS名。テストで差し替える
var goos = runtime.GOOS

func skipUnless(tb testing.TB, ok bool, format string, args ...any) {
	tb.Helper()
	if !ok {
		tb.Skipf(format, args...)
	}
}

// NotWindows skips the test on Windows.
func NotWindows(tb testing.TB) {
	tb.Helper()
	skipUnless(tb, goos != "windows", "skipped on Windows")
}

// OnlyWindows skips the test everywhere except Windows.
func OnlyWindows(tb testing.TB) {
	tb.Helper()
	skipUnless(tb, goos == "windows", "requires Windows, running on %s", goos)
}

// NotMacOS skips the test on macOS.
func NotMacOS(tb testing.TB) {
	tb.Helper()
	skipUnless(tb, goos != "darwin", "skipped on macOS")
}

// OnlyMacOS skips the test everywhere except macOS.
func OnlyMacOS(tb testing.TB) {
	tb.Helper()
	skipUnless(tb, goos == "darwin", "requires macOS, running on %s", goos)
}

// NotLinux skips the test on Linux.
func NotLinux(tb testing.TB) {
	tb.Helper()
	skipUnless(tb, goos != "linux", "skipped on Linux")
}

// OnlyLinux skips the test everywhere except Linux.
func OnlyLinux(tb testing.TB) {
	tb.Helper()
	skipUnless(tb, goos == "linux", "requires Linux, running on %s", goos)
}

// NotDocker skips the test inside a Docker container, as detected by dockerenv.IsDocker.
func NotDocker(tb testing.TB) {
	tb.Helper()
	NotDockerWith(tb, dockerenv.NewProbe())
}

// OnlyDocker skips the test outside a Docker container.
func OnlyDocker(tb testing.TB) {
	tb.Helper()
	OnlyDockerWith(tb, dockerenv.NewProbe())
}

// NotDockerWith is NotDocker with an explicit detector.
func NotDockerWith(tb testing.TB, d Detector) {
	tb.Helper()
	skipUnless(tb, !d.IsDocker(), "skipped inside Docker")
}

// OnlyDockerWith is OnlyDocker with an explicit detector.
func OnlyDockerWith(tb testing.TB, d Detector) {
	tb.Helper()
	skipUnless(tb, d.IsDocker(), "requires Docker")
}
