// Package clock reads the timestamps that bound a measured execution.
package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrClock is returned when the OS clock query fails. There is no degraded mode.
var ErrClock = errors.New("clock query failed")

// Strategy selects the OS primitive a Source reads.
type Strategy int

const (
	// Monotonic reads clock_gettime(CLOCK_MONOTONIC).
	Monotonic Strategy = iota
	// WallClock reads gettimeofday, for systems without clock_gettime.
	WallClock
)

func (s Strategy) String() string {
	switch s {
	case Monotonic:
		return "monotonic"
	case WallClock:
		return "wall-clock"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Timestamp is an opaque instant. It may only be compared with timestamps
// taken with the same strategy.
type Timestamp struct {
	ns       int64
	strategy Strategy
}

// Sub returns t-start. A regressing clock yields 0. ok is false when the
// two timestamps were taken with different strategies.
func (t Timestamp) Sub(start Timestamp) (d time.Duration, ok bool) {
	if t.strategy != start.strategy {
		return 0, false
	}
	if t.ns <= start.ns {
		return 0, true
	}
	return time.Duration(t.ns - start.ns), true
}

// Add returns the instant d after t on the same clock.
func (t Timestamp) Add(d time.Duration) Timestamp {
	return Timestamp{ns: t.ns + int64(d), strategy: t.strategy}
}

// Source produces timestamps with a fixed strategy.
type Source struct {
	strategy Strategy
	read     func() (int64, error)
}

// New returns a Source reading the clock selected by strategy.
// Callers normally pass the result of Detect.
func New(strategy Strategy) *Source {
	s := &Source{strategy: strategy}
	switch strategy {
	case WallClock:
		s.read = readWallClock
	default:
		s.strategy = Monotonic
		s.read = readMonotonic
	}
	return s
}

// Strategy reports the clock this source reads.
func (s *Source) Strategy() Strategy { return s.strategy }

// Now reads the clock.
func (s *Source) Now() (Timestamp, error) {
	ns, err := s.read()
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w (%s): %w", ErrClock, s.strategy, err)
	}
	return Timestamp{ns: ns, strategy: s.strategy}, nil
}

// Elapsed returns the time since start, never negative.
func (s *Source) Elapsed(start Timestamp) (time.Duration, error) {
	now, err := s.Now()
	if err != nil {
		return 0, err
	}
	d, ok := now.Sub(start)
	if !ok {
		return 0, fmt.Errorf("%w: timestamp taken with %s clock", ErrClock, start.strategy)
	}
	return d, nil
}
