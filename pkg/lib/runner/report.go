//go:build unix

package runner

import (
	"github.com/SanjoDeundiak/process-timer/pkg/lib"
	"github.com/SanjoDeundiak/process-timer/pkg/lib/clock"
	"github.com/SanjoDeundiak/process-timer/pkg/lib/rusage"
)

// BuildReport assembles the normalized report for one execution.
func BuildReport(id string, cmd lib.CommandSpec, start, end clock.Timestamp, usage rusage.Usage, term rusage.Termination) lib.ExecutionReport {
	elapsed, _ := end.Sub(start)

	report := lib.ExecutionReport{
		RunID:    id,
		Command:  append(lib.CommandSpec(nil), cmd...),
		ExitCode: term.ExitCode,
		Signal:   term.Signal,

		RealTime: elapsed,
		UserTime: usage.UserTime,
		SysTime:  usage.SystemTime,

		MaxRSSBytes:                usage.MaxRSSBytes(),
		HardPageFaults:             usage.MajorFaults,
		SoftPageFaults:             usage.MinorFaults,
		DiskInputOps:               usage.InBlock,
		DiskOutputOps:              usage.OutBlock,
		VoluntaryContextSwitches:   usage.VoluntaryCtxSwitches,
		InvoluntaryContextSwitches: usage.InvoluntaryCtxSwitches,
	}
	if elapsed > 0 {
		report.CPUPercent = 100 * float64(usage.UserTime+usage.SystemTime) / float64(elapsed)
	}
	return report
}
