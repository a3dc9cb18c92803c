//go:build darwin

package memprobe

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type darwinProbe struct{}

// New returns the probe for this platform.
func New() Probe {
	return darwinProbe{}
}

func (darwinProbe) PageSize() (uint64, error) {
	return uint64(unix.Getpagesize()), nil
}

func (darwinProbe) MemoryTotal() (uint64, error) {
	total, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0, fmt.Errorf("sysctl hw.memsize: %w", err)
	}
	return total, nil
}

// MemoryAvailable scales the kernel's memorystatus level, the percentage of
// physical memory available to applications, to bytes.
func (p darwinProbe) MemoryAvailable() (uint64, error) {
	level, err := unix.SysctlUint32("kern.memorystatus_level")
	if err != nil {
		return 0, fmt.Errorf("%w: sysctl kern.memorystatus_level: %w", ErrProbe, err)
	}
	if level > 100 {
		return 0, fmt.Errorf("%w: memorystatus level %d out of range", ErrProbe, level)
	}
	total, err := p.MemoryTotal()
	if err != nil {
		return 0, err
	}
	return total / 100 * uint64(level), nil
}
