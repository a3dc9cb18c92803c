//go:build unix

// Package rusage converts the OS wait status and resource usage of a
// terminated child into portable values.
package rusage

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/SanjoDeundiak/process-timer/pkg/lib"
)

// ErrUndecodedStatus is returned when a wait status is neither "exited" nor "signaled".
var ErrUndecodedStatus = errors.New("wait status is neither exited nor signaled")

// FromTimeval converts a microsecond-granularity OS time value.
func FromTimeval(tv unix.Timeval) time.Duration {
	return time.Duration(tv.Nano())
}

// FromTimespec converts a nanosecond-granularity OS time value.
func FromTimespec(ts unix.Timespec) time.Duration {
	return time.Duration(ts.Nano())
}

// Usage is an immutable copy of the rusage a single wait4 call returned.
type Usage struct {
	UserTime   time.Duration
	SystemTime time.Duration
	// MaxRSS is in the platform unit; see MaxRSSBytes.
	MaxRSS int64

	MajorFaults int64
	MinorFaults int64
	InBlock     int64
	OutBlock    int64

	VoluntaryCtxSwitches   int64
	InvoluntaryCtxSwitches int64
}

// FromRusage copies the fields the report needs out of ru.
func FromRusage(ru *unix.Rusage) Usage {
	if ru == nil {
		return Usage{}
	}
	// 32bit arch may use int32 for Maxrss etc.
	return Usage{
		UserTime:               FromTimeval(ru.Utime),
		SystemTime:             FromTimeval(ru.Stime),
		MaxRSS:                 int64(ru.Maxrss),
		MajorFaults:            int64(ru.Majflt),
		MinorFaults:            int64(ru.Minflt),
		InBlock:                int64(ru.Inblock),
		OutBlock:               int64(ru.Oublock),
		VoluntaryCtxSwitches:   int64(ru.Nvcsw),
		InvoluntaryCtxSwitches: int64(ru.Nivcsw),
	}
}

// MaxRSSBytes returns the peak resident set size in bytes.
func (u Usage) MaxRSSBytes() uint64 {
	if u.MaxRSS <= 0 {
		return 0
	}
	return uint64(u.MaxRSS) * maxRSSUnit
}

// Termination is the decoded wait status. Exactly one field is set.
type Termination struct {
	ExitCode *int
	Signal   *lib.Signal
}

// Decode interprets a wait status of a terminated child.
func Decode(ws unix.WaitStatus) (Termination, error) {
	switch {
	case ws.Exited():
		code := ws.ExitStatus()
		return Termination{ExitCode: &code}, nil
	case ws.Signaled():
		sig := ws.Signal()
		return Termination{Signal: &lib.Signal{
			Number: int(sig),
			Name:   sig.String(),
			Symbol: unix.SignalName(sig),
		}}, nil
	default:
		return Termination{}, fmt.Errorf("%w: raw status %#x", ErrUndecodedStatus, uint32(ws))
	}
}
