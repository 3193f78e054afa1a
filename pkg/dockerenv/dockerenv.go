// Package dockerenv detects whether the current process runs inside a Docker container.
package dockerenv

import (
	"strings"

	"github.com/spf13/afero"
)

const (
	// DefaultMarkerPath is the file Docker creates at the root of every container.
	DefaultMarkerPath = "/.dockerenv"
	// DefaultCgroupPath describes the control groups of the current process.
	DefaultCgroupPath = "/proc/self/cgroup"
)

// 判定理由
const (
	ReasonMarker = "marker"
	ReasonCgroup = "cgroup"
)

// Logger is the subset of a structured logger the probe writes to.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Probe inspects the filesystem for signs of a container. It keeps no state
// between calls, so every call sees the filesystem as it is at that moment.
type Probe struct {
	markerPath string
	cgroupPath string
	fs         afero.Fs
	logger     Logger
}

// Option configures a Probe.
type Option func(*Probe)

// WithMarkerPath overrides DefaultMarkerPath.
func WithMarkerPath(path string) Option {
	return func(p *Probe) {
		p.markerPath = path
	}
}

// WithCgroupPath overrides DefaultCgroupPath.
func WithCgroupPath(path string) Option {
	return func(p *Probe) {
		p.cgroupPath = path
	}
}

// WithFs reads through fs instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(p *Probe) {
		p.fs = fs
	}
}

// WithLogger reports probe decisions at debug level.
func WithLogger(l Logger) Option {
	return func(p *Probe) {
		p.logger = l
	}
}

// NewProbe returns a Probe reading the default paths from the OS filesystem
// unless overridden by opts.
func NewProbe(opts ...Option) *Probe {
	p := &Probe{
		markerPath: DefaultMarkerPath,
		cgroupPath: DefaultCgroupPath,
		fs:         afero.NewOsFs(),
		logger:     nopLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsDocker reports whether the default paths indicate a Docker container.
func IsDocker() bool {
	return NewProbe().IsDocker()
}

// IsDocker reports whether the marker file exists, or the cgroup file is a
// regular file with "docker" on one of its lines. Missing or unreadable files
// count as evidence against.
func (p *Probe) IsDocker() bool {
	return p.Reason() != ""
}

// Reason returns ReasonMarker or ReasonCgroup for the evidence that was found,
// or "" when the process does not appear to run in Docker.
func (p *Probe) Reason() string {
	if exists, err := afero.Exists(p.fs, p.markerPath); err == nil && exists {
		p.logger.Debug("docker marker file found", "path", p.markerPath)
		return ReasonMarker
	}

	if p.cgroupMentionsDocker() {
		p.logger.Debug("docker found in cgroup file", "path", p.cgroupPath)
		return ReasonCgroup
	}

	p.logger.Debug("no docker evidence found", "marker", p.markerPath, "cgroup", p.cgroupPath)
	return ""
}

func (p *Probe) cgroupMentionsDocker() bool {
	info, err := p.fs.Stat(p.cgroupPath)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		p.logger.Debug("cgroup path is not a regular file", "path", p.cgroupPath, "mode", info.Mode().String())
		return false
	}

	data, err := afero.ReadFile(p.fs, p.cgroupPath)
	if err != nil {
		p.logger.Debug("failed to read cgroup file", "path", p.cgroupPath, "error", err)
		return false
	}

	// 行の長さに上限を設けず、ファイル全体を対象にする
	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, "docker") {
			return true
		}
	}
	return false
}
