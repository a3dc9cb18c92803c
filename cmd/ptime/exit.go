package main

import (
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"github.com/SanjoDeundiak/process-timer/pkg/lib"
	"github.com/SanjoDeundiak/process-timer/pkg/lib/runner"
)

const (
	exitFailure    = 1
	exitCannotExec = 126
	exitNotFound   = 127
)

// exitError carries the process exit code. A nil err exits silently.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// exitCodeForReport mirrors the child: its exit code, or the signal number.
func exitCodeForReport(report *lib.ExecutionReport) int {
	switch {
	case report.ExitCode != nil:
		return *report.ExitCode
	case report.Signal != nil:
		return report.Signal.Number
	default:
		return exitFailure
	}
}

func exitCodeForError(err error) int {
	if !errors.Is(err, runner.ErrExec) {
		return exitFailure
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, syscall.ENOENT) {
		return exitNotFound
	}
	return exitCannotExec
}
