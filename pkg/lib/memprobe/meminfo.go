package memprobe

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MemInfo holds the /proc/meminfo fields used to estimate available memory, in kB.
type MemInfo struct {
	// Available is nil when the kernel predates MemAvailable.
	Available    *int64
	Free         int64
	ActiveFile   int64
	InactiveFile int64
	SReclaimable int64
}

const (
	keyAvailable    = "MemAvailable"
	keyFree         = "MemFree"
	keyActiveFile   = "Active(file)"
	keyInactiveFile = "Inactive(file)"
	keySReclaimable = "SReclaimable"
)

// ParseMemInfo reads "Key:   value kB" lines. MemFree, Active(file),
// Inactive(file) and SReclaimable are required.
func ParseMemInfo(r io.Reader) (MemInfo, error) {
	var info MemInfo
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		var dst *int64
		switch key {
		case keyAvailable:
			info.Available = new(int64)
			dst = info.Available
		case keyFree:
			dst = &info.Free
		case keyActiveFile:
			dst = &info.ActiveFile
		case keyInactiveFile:
			dst = &info.InactiveFile
		case keySReclaimable:
			dst = &info.SReclaimable
		default:
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return MemInfo{}, fmt.Errorf("%w: meminfo %s has no value", ErrProbe, key)
		}
		v, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return MemInfo{}, fmt.Errorf("%w: meminfo %s: %w", ErrProbe, key, err)
		}
		*dst = v
		seen[key] = true
	}
	if err := scanner.Err(); err != nil {
		return MemInfo{}, fmt.Errorf("%w: %w", ErrProbe, err)
	}

	for _, key := range []string{keyFree, keyActiveFile, keyInactiveFile, keySReclaimable} {
		if !seen[key] {
			return MemInfo{}, fmt.Errorf("%w: meminfo is missing %s", ErrProbe, key)
		}
	}
	return info, nil
}

// EstimateAvailable approximates MemAvailable for kernels that lack it, in kB.
// It follows the kernel's si_mem_available: free pages plus the reclaimable
// halves of the page cache and slab, each keeping the low watermark in reserve.
// Reserved pages are not accounted for.
func EstimateAvailable(info MemInfo, minFreeKB int64) int64 {
	low := minFreeKB * 5 / 4
	fileBacked := info.InactiveFile - info.ActiveFile
	fileBackedLow := max(fileBacked/2, low)
	reclaimableLow := max(info.SReclaimable/2, low)
	return max(info.Free-low+fileBacked-fileBackedLow+info.SReclaimable-reclaimableLow, 0)
}

// AvailableKB prefers the kernel's MemAvailable and otherwise falls back to
// EstimateAvailable. minFree is only consulted for the fallback.
func AvailableKB(info MemInfo, minFree func() (int64, error)) (int64, error) {
	if info.Available != nil && *info.Available >= 0 {
		return *info.Available, nil
	}
	minFreeKB, err := minFree()
	if err != nil {
		return 0, err
	}
	return EstimateAvailable(info, minFreeKB), nil
}
