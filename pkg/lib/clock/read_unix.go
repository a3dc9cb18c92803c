//go:build unix

package clock

import (
	"golang.org/x/sys/unix"
)

func readMonotonic() (int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, err
	}
	return ts.Nano(), nil
}

func readWallClock() (int64, error) {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err != nil {
		return 0, err
	}
	return tv.Nano(), nil
}
