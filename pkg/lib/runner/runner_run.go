//go:build unix

package runner

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/SanjoDeundiak/process-timer/pkg/lib"
	"github.com/SanjoDeundiak/process-timer/pkg/lib/clock"
	"github.com/SanjoDeundiak/process-timer/pkg/lib/rusage"
)

var (
	ErrAlreadyStarted = errors.New("runner already started")
	ErrFork           = errors.New("failed to fork")
	ErrExec           = errors.New("failed to exec command")
	ErrWait           = errors.New("failed to wait for child")
)

// RunResult is the raw outcome of one execution. Status and Usage come from
// the same wait4 call.
type RunResult struct {
	ID     string
	Pid    int
	Start  clock.Timestamp
	End    clock.Timestamp
	Status unix.WaitStatus
	Usage  rusage.Usage
}

// Run forks and execs cmd, then blocks until it terminates. Every error is
// fatal to the measurement; no partial result is returned.
func (runner *Runner) Run(cmd lib.CommandSpec) (*RunResult, error) {
	if runner.state != lib.ProcessStateNotStarted {
		return nil, ErrAlreadyStarted
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	path, err := exec.LookPath(cmd[0])
	if err != nil && !errors.Is(err, exec.ErrDot) {
		// The lookup error already names the command.
		return nil, fmt.Errorf("%w: %w", ErrExec, err)
	}

	attr := &syscall.ProcAttr{
		Dir:   runner.dir,
		Env:   runner.env,
		Files: []uintptr{runner.stdin.Fd(), runner.stdout.Fd(), runner.stderr.Fd()},
		Sys:   sysProcAttr(),
	}

	// Pdeathsig is bound to the forking thread, which must outlive the child.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	restore := ignoreInterrupts()
	defer restore()

	start, err := runner.clock.Now()
	if err != nil {
		return nil, err
	}
	pid, err := syscall.ForkExec(path, cmd, attr)
	if err != nil {
		return nil, startError(cmd[0], err)
	}
	runner.pid = pid
	runner.state = lib.ProcessStateRunning

	ws, ru, err := wait4(pid)
	if err != nil {
		return nil, err
	}
	end, err := runner.clock.Now()
	if err != nil {
		return nil, err
	}
	runner.state = lib.ProcessStateTerminated

	return &RunResult{
		ID:     lib.NewID(),
		Pid:    pid,
		Start:  start,
		End:    end,
		Status: ws,
		Usage:  rusage.FromRusage(&ru),
	}, nil
}

// wait4 blocks until pid terminates, retrying only when interrupted.
func wait4(pid int) (unix.WaitStatus, unix.Rusage, error) {
	var (
		ws unix.WaitStatus
		ru unix.Rusage
	)
	for {
		wpid, err := unix.Wait4(pid, &ws, 0, &ru)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, unix.Rusage{}, fmt.Errorf("%w %d: %w", ErrWait, pid, err)
		}
		if wpid == pid {
			return ws, ru, nil
		}
	}
}

// startError classifies a ForkExec failure. Failures of the exec step in the
// child are reported back through ForkExec, so resource errors mean the fork
// itself failed and everything else is an exec failure.
func startError(name string, err error) error {
	switch {
	case errors.Is(err, syscall.EAGAIN), errors.Is(err, syscall.ENOMEM), errors.Is(err, syscall.ENOSYS):
		return fmt.Errorf("%w: %w", ErrFork, err)
	default:
		return fmt.Errorf("%w %q: %w", ErrExec, name, err)
	}
}
