// Package runner launches a single command and measures it until it terminates.
package runner

import (
	"os"

	"github.com/SanjoDeundiak/process-timer/pkg/lib"
	"github.com/SanjoDeundiak/process-timer/pkg/lib/clock"
)

// Runner launches one child and waits for it. A Runner is single-use and not
// safe for concurrent use.
type Runner struct {
	clock *clock.Source

	stdin  *os.File
	stdout *os.File
	stderr *os.File
	env    []string
	dir    string

	state lib.ProcessState
	pid   int
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock sets the clock used for the start and end timestamps.
func WithClock(c *clock.Source) Option {
	return func(r *Runner) { r.clock = c }
}

// WithStdio sets the files the child inherits as stdin, stdout and stderr.
func WithStdio(stdin, stdout, stderr *os.File) Option {
	return func(r *Runner) {
		r.stdin, r.stdout, r.stderr = stdin, stdout, stderr
	}
}

// WithEnv replaces the child environment.
func WithEnv(env []string) Option {
	return func(r *Runner) { r.env = append([]string(nil), env...) }
}

// WithDir sets the child working directory.
func WithDir(dir string) Option {
	return func(r *Runner) { r.dir = dir }
}

// NewRunner creates a Runner. By default the child inherits the standard
// streams and environment of this process and the clock is detected.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		env:    os.Environ(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.clock == nil {
		r.clock = clock.New(clock.Detect())
	}
	return r
}
