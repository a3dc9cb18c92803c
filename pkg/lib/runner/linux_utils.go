//go:build linux

package runner

import (
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		// The child must not outlive the timer. It stays in our process group
		// so terminal signals reach it directly.
		Pdeathsig: syscall.SIGKILL,
	}
}
