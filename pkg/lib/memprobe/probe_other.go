//go:build !linux && !darwin

package memprobe

import "os"

type genericProbe struct{}

// New returns the probe for this platform. Only the page size is known.
func New() Probe {
	return genericProbe{}
}

func (genericProbe) PageSize() (uint64, error) {
	return uint64(os.Getpagesize()), nil
}

func (genericProbe) MemoryTotal() (uint64, error) {
	return 0, ErrUnsupported
}

func (genericProbe) MemoryAvailable() (uint64, error) {
	return 0, ErrUnsupported
}
