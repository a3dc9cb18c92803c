// Package memprobe answers the host facts reported before a child is launched.
package memprobe

import (
	"errors"
	"runtime"

	"github.com/SanjoDeundiak/process-timer/pkg/lib"
)

var (
	// ErrProbe is returned when a kernel interface is missing a required field
	// or holds a value that cannot be parsed.
	ErrProbe = errors.New("memory probe failed")
	// ErrUnsupported is returned for queries the platform cannot answer.
	ErrUnsupported = errors.New("memory query not supported on this platform")
)

// Probe answers host memory questions. Each query fails independently.
type Probe interface {
	PageSize() (uint64, error)
	MemoryTotal() (uint64, error)
	MemoryAvailable() (uint64, error)
}

// Collect runs every host query once. A failed query leaves its field nil and
// is reported through onErr when it is non-nil.
func Collect(probe Probe, onErr func(query string, err error)) lib.HostFacts {
	var facts lib.HostFacts

	if n := runtime.NumCPU(); n > 0 {
		facts.CPUCount = &n
	}

	record := func(query string, fn func() (uint64, error)) *uint64 {
		v, err := fn()
		if err != nil {
			if onErr != nil {
				onErr(query, err)
			}
			return nil
		}
		return &v
	}
	facts.PageSizeBytes = record("page_size", probe.PageSize)
	facts.MemTotalBytes = record("mem_total", probe.MemoryTotal)
	facts.MemAvailableBytes = record("mem_avail", probe.MemoryAvailable)

	return facts
}
