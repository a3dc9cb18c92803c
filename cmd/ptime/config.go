package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/SanjoDeundiak/process-timer/pkg/lib"
)

const (
	envTimeFormat = "PTIME_TIME_FORMAT"
	envOutput     = "PTIME_OUTPUT"
	envVerbose    = "PTIME_VERBOSE"
)

// options are the settings of one invocation. Environment values are the
// defaults and flags override them.
type options struct {
	timeFormat lib.TimeFormat
	output     lib.OutputFormat
	verbose    bool
}

func loadOptions() (options, error) {
	var opts options

	if raw := envOrDefault(envTimeFormat, ""); raw != "" {
		if err := opts.timeFormat.Set(raw); err != nil {
			return opts, fmt.Errorf("%s: %w", envTimeFormat, err)
		}
	}
	if raw := envOrDefault(envOutput, ""); raw != "" {
		if err := opts.output.Set(raw); err != nil {
			return opts, fmt.Errorf("%s: %w", envOutput, err)
		}
	}
	if raw := envOrDefault(envVerbose, ""); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("%s: invalid boolean %q", envVerbose, raw)
		}
		opts.verbose = v
	}
	return opts, nil
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
