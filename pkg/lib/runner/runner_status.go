package runner

import (
	"github.com/SanjoDeundiak/process-timer/pkg/lib"
)

// State returns where the runner is in its lifecycle.
func (runner *Runner) State() lib.ProcessState {
	return runner.state
}

// Pid returns the child pid, or 0 before the fork succeeded.
func (runner *Runner) Pid() int {
	return runner.pid
}
