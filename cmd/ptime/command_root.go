package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/SanjoDeundiak/process-timer/pkg/lib"
	"github.com/SanjoDeundiak/process-timer/pkg/lib/clock"
	"github.com/SanjoDeundiak/process-timer/pkg/lib/memprobe"
	"github.com/SanjoDeundiak/process-timer/pkg/lib/runner"
)

var version = "dev"

var logger = log.New(io.Discard, "ptime: ", 0)

func NewRootCmd() *cobra.Command {
	opts, optsErr := loadOptions()

	root := &cobra.Command{
		Use:   "ptime [flags] [--] <command> [args...]",
		Short: "Time a command and report its resource usage",
		Example: `  ptime -- cat some/file
  ptime --time nano -- sh -c 'echo "do something"'
  ptime -o json make -j8`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("command to execute is required; use -- to separate ptime flags from the command")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if optsErr != nil {
				return optsErr
			}
			return run(cmd.ErrOrStderr(), opts, lib.CommandSpec(args))
		},
	}

	// Everything after the command name belongs to the command.
	root.Flags().SetInterspersed(false)
	root.Flags().VarP(&opts.timeFormat, "time", "t", "time format: normal, seconds, milli, micro or nano")
	root.Flags().VarP(&opts.output, "output", "o", "report format: standard or json")
	// -v is left to cobra's --version.
	root.Flags().BoolVar(&opts.verbose, "verbose", opts.verbose, "log diagnostics to stderr")

	return root
}

// run measures cmd and writes the host facts and the report to w.
func run(w io.Writer, opts options, cmd lib.CommandSpec) error {
	if opts.verbose {
		logger.SetOutput(w)
	} else {
		logger.SetOutput(io.Discard)
	}

	p := newPrinter(w, opts)

	clk := clock.New(clock.Detect())
	logger.Printf("clock: %s", clk.Strategy())

	facts := memprobe.Collect(memprobe.New(), func(query string, err error) {
		logger.Printf("%s unavailable: %v", query, err)
	})
	if err := p.printHostFacts(cmd, facts); err != nil {
		return err
	}

	r := runner.NewRunner(runner.WithClock(clk), runner.WithStdio(os.Stdin, os.Stdout, os.Stderr))
	report, err := r.Measure(cmd)
	if report == nil {
		return &exitError{code: exitCodeForError(err), err: err}
	}
	logger.Printf("run %s: pid %d %s", report.RunID, r.Pid(), r.State())
	// A report with an error has both termination fields absent.
	if err := p.printReport(report, err); err != nil {
		return err
	}
	if code := exitCodeForReport(report); code != 0 {
		return &exitError{code: code}
	}
	return nil
}
