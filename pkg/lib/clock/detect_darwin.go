//go:build darwin

package clock

import (
	"golang.org/x/sys/unix"
)

// Detect selects the clock for this host. The answer does not change during
// the life of the process, so callers detect once and pass it to New.
func Detect() Strategy {
	release, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return Monotonic
	}
	return strategyForRelease(release)
}
