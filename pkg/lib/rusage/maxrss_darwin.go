//go:build darwin

package rusage

// Darwin reports ru_maxrss in bytes.
const maxRSSUnit = 1
