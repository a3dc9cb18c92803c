package lib

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptyCommand is returned when a CommandSpec has no elements.
	ErrEmptyCommand = errors.New("command is required")
	// ErrEncoding is returned when a command element contains a NUL byte.
	ErrEncoding = errors.New("command contains an embedded NUL byte")
)

// ProcessState tracks the lifecycle of the single child a runner launches.
type ProcessState int

const (
	ProcessStateNotStarted ProcessState = iota
	ProcessStateRunning
	ProcessStateTerminated
)

func (s ProcessState) String() string {
	switch s {
	case ProcessStateNotStarted:
		return "not started"
	case ProcessStateRunning:
		return "running"
	case ProcessStateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("ProcessState(%d)", int(s))
	}
}

// CommandSpec is the argv of the command to measure. Element 0 is the executable.
type CommandSpec []string

// Validate checks that the command is non-empty and that no element carries a NUL byte.
func (c CommandSpec) Validate() error {
	if len(c) == 0 || c[0] == "" {
		return ErrEmptyCommand
	}
	for i, arg := range c {
		if strings.IndexByte(arg, 0) >= 0 {
			return fmt.Errorf("argument %d: %w", i, ErrEncoding)
		}
	}
	return nil
}

func (c CommandSpec) String() string {
	return strings.Join(c, " ")
}

// Signal identifies the signal that terminated a child.
type Signal struct {
	Number int
	// Name is the platform description, e.g. "terminated".
	Name string
	// Symbol is the constant name, e.g. "SIGTERM".
	Symbol string
}

// HostFacts are captured once before the child starts. A nil field means the query failed.
type HostFacts struct {
	CPUCount          *int
	PageSizeBytes     *uint64
	MemTotalBytes     *uint64
	MemAvailableBytes *uint64
}

// ExecutionReport is the normalized result of one measured execution.
//
// For a normally observed termination exactly one of ExitCode and Signal is set.
// Both are nil only when the wait status could not be decoded.
type ExecutionReport struct {
	RunID   string
	Command CommandSpec

	ExitCode *int
	Signal   *Signal

	RealTime   time.Duration
	UserTime   time.Duration
	SysTime    time.Duration
	CPUPercent float64

	MaxRSSBytes                uint64
	HardPageFaults             int64
	SoftPageFaults             int64
	DiskInputOps               int64
	DiskOutputOps              int64
	VoluntaryContextSwitches   int64
	InvoluntaryContextSwitches int64
}
