//go:build !darwin

package clock

// Detect selects the clock for this host. Only old Darwin releases lack a
// monotonic clock, so everywhere else this is Monotonic.
func Detect() Strategy {
	return Monotonic
}
