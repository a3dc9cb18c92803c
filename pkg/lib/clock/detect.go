package clock

import (
	"strconv"
	"strings"
)

// Darwin 16.0 is macOS 10.12.0, the last release timed with gettimeofday.
// Darwin 16.1 (10.12.1) and later read the monotonic clock.
const (
	lastWallClockDarwinMajor = 16
	lastWallClockDarwinMinor = 0
)

// strategyForRelease maps a Darwin kernel release such as "15.6.0" to a strategy.
// Unparseable releases are treated as modern.
func strategyForRelease(release string) Strategy {
	parts := strings.SplitN(strings.TrimSpace(release), ".", 3)
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Monotonic
	}
	minor := 0
	if len(parts) > 1 {
		if minor, err = strconv.Atoi(parts[1]); err != nil {
			return Monotonic
		}
	}
	switch {
	case major < lastWallClockDarwinMajor:
		return WallClock
	case major == lastWallClockDarwinMajor && minor <= lastWallClockDarwinMinor:
		return WallClock
	default:
		return Monotonic
	}
}
