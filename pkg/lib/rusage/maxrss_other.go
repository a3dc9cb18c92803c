//go:build unix && !darwin

package rusage

// Linux and the BSDs report ru_maxrss in KiB.
const maxRSSUnit = 1024
