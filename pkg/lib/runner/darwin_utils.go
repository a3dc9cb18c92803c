//go:build unix && !linux

package runner

import (
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	// No parent-death signal outside linux; the child stays in our process group.
	return &syscall.SysProcAttr{}
}
