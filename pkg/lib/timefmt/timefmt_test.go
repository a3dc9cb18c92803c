package timefmt

import (
	"strings"
	"testing"
	"time"

	"github.com/SanjoDeundiak/process-timer/pkg/lib"
)

func TestFormatAdaptive(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0ns"},
		{42 * time.Nanosecond, "42ns"},
		{999 * time.Nanosecond, "999ns"},
		{time.Microsecond, "1.000µs"},
		{1500 * time.Nanosecond, "1.500µs"},
		{999_999 * time.Nanosecond, "999.999µs"},
		{time.Millisecond, "1.000000ms"},
		{999_999_999 * time.Nanosecond, "999.999999ms"},
		{time.Second, "1.000000000s"},
		{90*time.Second + 5*time.Nanosecond, "90.000000005s"},
		{100000*time.Hour + time.Nanosecond, "360000000.000000001s"},
	}
	for _, tc := range tests {
		if got := Format(tc.in, lib.TimeFormatAdaptive); got != tc.want {
			t.Fatalf("Format(%d, adaptive) = %q, want %q", int64(tc.in), got, tc.want)
		}
	}
}

func TestFormatAdaptiveUnitSelection(t *testing.T) {
	for d := time.Duration(1); d < time.Second; d = d*3 + 1 {
		got := Format(d, lib.TimeFormatAdaptive)
		var unit string
		switch {
		case d < time.Microsecond:
			unit = "ns"
		case d < time.Millisecond:
			unit = "µs"
		default:
			unit = "ms"
		}
		if !strings.HasSuffix(got, unit) || (unit == "ns" && strings.Contains(got, ".")) {
			t.Fatalf("Format(%d) = %q, want unit %s", int64(d), got, unit)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		f    lib.TimeFormat
		want string
	}{
		{time.Second, lib.TimeFormatSeconds, "1.000000000s"},
		{42 * time.Nanosecond, lib.TimeFormatNano, "42ns"},
		{42 * time.Nanosecond, lib.TimeFormatSeconds, "0.000000042s"},
		{time.Second, lib.TimeFormatMilli, "1000.000000ms"},
		{time.Millisecond, lib.TimeFormatMicro, "1000.000µs"},
		{time.Microsecond, lib.TimeFormatMilli, "0.001000ms"},
		{2 * time.Second, lib.TimeFormatNano, "2000000000ns"},
		{1500 * time.Nanosecond, lib.TimeFormatMicro, "1.500µs"},
		{100000*time.Hour + time.Nanosecond, lib.TimeFormatSeconds, "360000000.000000001s"},
		{100000*time.Hour + time.Nanosecond, lib.TimeFormatMilli, "360000000000.000001ms"},
		{100000*time.Hour + time.Nanosecond, lib.TimeFormatMicro, "360000000000000.001µs"},
		{-1500 * time.Millisecond, lib.TimeFormatSeconds, "-1.500000000s"},
	}
	for _, tc := range tests {
		if got := Format(tc.in, tc.f); got != tc.want {
			t.Fatalf("Format(%d, %v) = %q, want %q", int64(tc.in), tc.f, got, tc.want)
		}
	}
}

func TestBytes(t *testing.T) {
	tests := map[uint64]string{
		0:                "0 B",
		1023:             "1023 B",
		1024:             "1.0 KiB",
		1536:             "1.5 KiB",
		8 * 1024 * 1024:  "8.0 MiB",
		3 << 30:          "3.0 GiB",
		5 << 40:          "5.0 TiB",
		(1 << 50) * 2048: "2048.0 PiB",
	}
	for in, want := range tests {
		if got := Bytes(in); got != want {
			t.Fatalf("Bytes(%d) = %q, want %q", in, got, want)
		}
	}
}
