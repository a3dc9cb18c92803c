package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/SanjoDeundiak/process-timer/pkg/lib"
	"github.com/SanjoDeundiak/process-timer/pkg/lib/timefmt"
)

const noData = "-"

type printer struct {
	w          io.Writer
	timeFormat lib.TimeFormat
	output     lib.OutputFormat
	// human adds readable sizes next to byte counts.
	human bool
}

func newPrinter(w io.Writer, opts options) *printer {
	p := &printer{w: w, timeFormat: opts.timeFormat, output: opts.output}
	if f, ok := w.(*os.File); ok {
		p.human = term.IsTerminal(int(f.Fd()))
	}
	return p
}

type hostFactsJSON struct {
	Cmdline  string  `json:"cmdline"`
	CPUCount *int    `json:"cpu_count"`
	MemTotal *uint64 `json:"mem_total"`
	MemAvail *uint64 `json:"mem_avail"`
	PageSize *uint64 `json:"page_size"`
}

type reportJSON struct {
	RunID          string  `json:"run_id"`
	ExitCode       *int    `json:"exit_code"`
	TermSignal     *int    `json:"term_signal"`
	TermSignalName *string `json:"term_signal_name"`
	TimeReal       int64   `json:"time_real"`
	TimeUser       int64   `json:"time_user"`
	TimeSys        int64   `json:"time_sys"`
	PercentCPU     float64 `json:"percent_cpu"`
	MaxRSS         uint64  `json:"max_rss"`
	HardPageFaults int64   `json:"hard_page_faults"`
	SoftPageFaults int64   `json:"soft_page_faults"`
	DiskInputs     int64   `json:"disk_inputs"`
	DiskOutputs    int64   `json:"disk_outputs"`
	VoluntaryCSW   int64   `json:"voluntary_csw"`
	InvoluntaryCSW int64   `json:"involuntary_csw"`
	Error          string  `json:"error,omitempty"`
}

func (p *printer) printHostFacts(cmd lib.CommandSpec, facts lib.HostFacts) error {
	if p.output == lib.OutputFormatJSON {
		return p.writeJSON(hostFactsJSON{
			Cmdline:  cmd.String(),
			CPUCount: facts.CPUCount,
			MemTotal: facts.MemTotalBytes,
			MemAvail: facts.MemAvailableBytes,
			PageSize: facts.PageSizeBytes,
		})
	}

	cpu := noData
	if facts.CPUCount != nil {
		cpu = strconv.Itoa(*facts.CPUCount)
	}
	return p.writeTable([][2]string{
		{"cmdline", cmd.String()},
		{"cpu_count", cpu},
		{"mem_total", p.bytes(facts.MemTotalBytes)},
		{"mem_avail", p.bytes(facts.MemAvailableBytes)},
		{"page_size", p.bytes(facts.PageSizeBytes)},
	})
}

// printReport writes r. A non-nil measureErr is a problem that still left a
// report, such as an undecodable wait status.
func (p *printer) printReport(r *lib.ExecutionReport, measureErr error) error {
	if p.output == lib.OutputFormatJSON {
		out := reportJSON{
			RunID:          r.RunID,
			ExitCode:       r.ExitCode,
			TimeReal:       r.RealTime.Nanoseconds(),
			TimeUser:       r.UserTime.Nanoseconds(),
			TimeSys:        r.SysTime.Nanoseconds(),
			PercentCPU:     r.CPUPercent,
			MaxRSS:         r.MaxRSSBytes,
			HardPageFaults: r.HardPageFaults,
			SoftPageFaults: r.SoftPageFaults,
			DiskInputs:     r.DiskInputOps,
			DiskOutputs:    r.DiskOutputOps,
			VoluntaryCSW:   r.VoluntaryContextSwitches,
			InvoluntaryCSW: r.InvoluntaryContextSwitches,
		}
		if r.Signal != nil {
			out.TermSignal = &r.Signal.Number
			out.TermSignalName = &r.Signal.Name
		}
		if measureErr != nil {
			out.Error = measureErr.Error()
		}
		return p.writeJSON(out)
	}

	if measureErr != nil {
		if _, err := fmt.Fprintf(p.w, "ptime: %v\n", measureErr); err != nil {
			return err
		}
	}

	exitCode, signal, signalName := noData, noData, noData
	if r.ExitCode != nil {
		exitCode = strconv.Itoa(*r.ExitCode)
	}
	if r.Signal != nil {
		signal = strconv.Itoa(r.Signal.Number)
		signalName = r.Signal.Name
		if r.Signal.Symbol != "" {
			signalName = fmt.Sprintf("%s (%s)", r.Signal.Name, r.Signal.Symbol)
		}
	}
	maxRSS := r.MaxRSSBytes
	return p.writeTable([][2]string{
		{"exit_code", exitCode},
		{"term_signal", signal},
		{"term_signal_name", signalName},
		{"time_real", timefmt.Format(r.RealTime, p.timeFormat)},
		{"time_user", timefmt.Format(r.UserTime, p.timeFormat)},
		{"time_sys", timefmt.Format(r.SysTime, p.timeFormat)},
		{"percent_cpu", strconv.FormatFloat(r.CPUPercent, 'f', 2, 64)},
		{"max_rss", p.bytes(&maxRSS)},
		{"hard_page_faults", strconv.FormatInt(r.HardPageFaults, 10)},
		{"soft_page_faults", strconv.FormatInt(r.SoftPageFaults, 10)},
		{"disk_inputs", strconv.FormatInt(r.DiskInputOps, 10)},
		{"disk_outputs", strconv.FormatInt(r.DiskOutputOps, 10)},
		{"voluntary_csw", strconv.FormatInt(r.VoluntaryContextSwitches, 10)},
		{"involuntary_csw", strconv.FormatInt(r.InvoluntaryContextSwitches, 10)},
	})
}

func (p *printer) bytes(v *uint64) string {
	if v == nil {
		return noData
	}
	s := strconv.FormatUint(*v, 10)
	if p.human {
		s += " (" + timefmt.Bytes(*v) + ")"
	}
	return s
}

func (p *printer) writeJSON(v any) error {
	return json.NewEncoder(p.w).Encode(v)
}

func (p *printer) writeTable(rows [][2]string) error {
	// Both tables share one column so they line up when printed together.
	keyW := len("term_signal_name:")
	for _, row := range rows {
		keyW = maxInt(keyW, len(row[0])+1)
	}
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s %s\n", pad(row[0]+":", keyW), row[1])
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
