//go:build linux

package memprobe

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

const defaultProcRoot = "/proc"

type linuxProbe struct {
	procRoot string
}

// New returns the probe for this platform.
func New() Probe {
	return &linuxProbe{procRoot: defaultProcRoot}
}

// NewWithProcRoot reads meminfo and min_free_kbytes below root instead of /proc.
func NewWithProcRoot(root string) Probe {
	return &linuxProbe{procRoot: root}
}

func (p *linuxProbe) PageSize() (uint64, error) {
	return uint64(unix.Getpagesize()), nil
}

func (p *linuxProbe) MemoryTotal() (uint64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, fmt.Errorf("sysinfo: %w", err)
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	return uint64(info.Totalram) * unit, nil
}

func (p *linuxProbe) MemoryAvailable() (uint64, error) {
	f, err := os.Open(filepath.Join(p.procRoot, "meminfo"))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrProbe, err)
	}
	defer f.Close()

	info, err := ParseMemInfo(f)
	if err != nil {
		return 0, err
	}
	kb, err := AvailableKB(info, p.minFreeKB)
	if err != nil {
		return 0, err
	}
	return uint64(kb) * 1024, nil
}

func (p *linuxProbe) minFreeKB() (int64, error) {
	data, err := os.ReadFile(filepath.Join(p.procRoot, "sys", "vm", "min_free_kbytes"))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrProbe, err)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: min_free_kbytes: %w", ErrProbe, err)
	}
	return v, nil
}
