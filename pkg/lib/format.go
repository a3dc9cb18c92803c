package lib

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*TimeFormat)(nil)
	_ pflag.Value = (*OutputFormat)(nil)
)

// TimeFormat selects how durations are rendered.
type TimeFormat int

const (
	// TimeFormatAdaptive picks the coarsest unit in which the value is at least 1.
	TimeFormatAdaptive TimeFormat = iota
	TimeFormatSeconds
	TimeFormatMilli
	TimeFormatMicro
	TimeFormatNano
)

var timeFormatNames = map[TimeFormat]string{
	TimeFormatAdaptive: "normal",
	TimeFormatSeconds:  "seconds",
	TimeFormatMilli:    "milli",
	TimeFormatMicro:    "micro",
	TimeFormatNano:     "nano",
}

// ParseTimeFormat accepts normal (or adaptive), seconds, milli, micro and nano.
func ParseTimeFormat(s string) (TimeFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "adaptive" {
		return TimeFormatAdaptive, nil
	}
	for f, n := range timeFormatNames {
		if n == name {
			return f, nil
		}
	}
	return TimeFormatAdaptive, fmt.Errorf("unrecognised time format %q (possible values: normal, seconds, milli, micro, nano)", s)
}

func (f TimeFormat) String() string {
	if n, ok := timeFormatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("TimeFormat(%d)", int(f))
}

// Set implements pflag.Value.
func (f *TimeFormat) Set(s string) error {
	parsed, err := ParseTimeFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *TimeFormat) Type() string { return "format" }

// OutputFormat selects how reports are written.
type OutputFormat int

const (
	OutputFormatStandard OutputFormat = iota
	OutputFormatJSON
)

// ParseOutputFormat accepts standard and json.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return OutputFormatStandard, nil
	case "json":
		return OutputFormatJSON, nil
	}
	return OutputFormatStandard, fmt.Errorf("unrecognised output format %q (possible values: standard, json)", s)
}

func (f OutputFormat) String() string {
	if f == OutputFormatJSON {
		return "json"
	}
	return "standard"
}

// Set implements pflag.Value.
func (f *OutputFormat) Set(s string) error {
	parsed, err := ParseOutputFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *OutputFormat) Type() string { return "output" }
