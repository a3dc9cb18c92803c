//go:build unix

package runner

import (
	"github.com/SanjoDeundiak/process-timer/pkg/lib"
	"github.com/SanjoDeundiak/process-timer/pkg/lib/rusage"
)

// Measure runs cmd to completion and returns its report.
//
// If the wait status cannot be decoded the report is still returned, with
// neither ExitCode nor Signal set, together with an error wrapping
// rusage.ErrUndecodedStatus. Any other error means there is no report.
func (runner *Runner) Measure(cmd lib.CommandSpec) (*lib.ExecutionReport, error) {
	res, err := runner.Run(cmd)
	if err != nil {
		return nil, err
	}
	term, decodeErr := rusage.Decode(res.Status)
	report := BuildReport(res.ID, cmd, res.Start, res.End, res.Usage, term)
	return &report, decodeErr
}
