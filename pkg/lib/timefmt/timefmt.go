// Package timefmt renders durations and byte counts for reports.
package timefmt

import (
	"fmt"
	"time"

	"github.com/SanjoDeundiak/process-timer/pkg/lib"
)

// Format renders d under the given policy.
//
// Adaptive uses seconds with 9 fractional digits from one second up, and below
// that the coarsest of ms, µs and ns in which d is at least 1. The fixed
// formats always use their own unit: seconds (9 digits), milli (6), micro (3)
// and nano (integer).
func Format(d time.Duration, f lib.TimeFormat) string {
	switch f {
	case lib.TimeFormatSeconds:
		return seconds(d)
	case lib.TimeFormatMilli:
		return millis(d)
	case lib.TimeFormatMicro:
		return micros(d)
	case lib.TimeFormatNano:
		return nanos(d)
	}

	switch {
	case d >= time.Second:
		return seconds(d)
	case d >= time.Millisecond:
		return millis(d)
	case d >= time.Microsecond:
		return micros(d)
	default:
		return nanos(d)
	}
}

func seconds(d time.Duration) string { return decimal(d, time.Second, 9, "s") }

func millis(d time.Duration) string { return decimal(d, time.Millisecond, 6, "ms") }

func micros(d time.Duration) string { return decimal(d, time.Microsecond, 3, "µs") }

// decimal prints d in unit using integer arithmetic so no nanosecond is lost.
// digits is the number of nanosecond digits in one unit.
func decimal(d, unit time.Duration, digits int, suffix string) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	return fmt.Sprintf("%s%d.%0*d%s", sign, int64(d/unit), digits, int64(d%unit), suffix)
}

func nanos(d time.Duration) string { return fmt.Sprintf("%dns", int64(d)) }

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

// Bytes renders n with the largest binary unit that keeps the value at least 1.
func Bytes(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(byteUnits)-1 {
		v /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", v, byteUnits[i])
}
