package splash

import (
	"fmt"
	"math"
	"runtime"
	"runtime/debug"
)

const bytesPerMB = 1048576

// MemoryUsage is a snapshot of the process heap.
type MemoryUsage struct {
	Used uint64 // bytes currently allocated and not yet freed
	Max  uint64 // ceiling the heap may grow to
}

// MemoryReader returns the current memory usage of the process.
type MemoryReader func() MemoryUsage

// ReadMemory samples the Go runtime. Max is the soft memory limit when one
// is configured, otherwise the memory obtained from the OS.
func ReadMemory() MemoryUsage {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	usage := MemoryUsage{Used: m.HeapAlloc, Max: m.Sys}
	if limit := debug.SetMemoryLimit(-1); limit > 0 && limit < math.MaxInt64 {
		usage.Max = uint64(limit)
	}
	if usage.Max < usage.Used {
		usage.Max = usage.Used
	}
	return usage
}

// FormatMemory renders usage as whole megabytes.
func FormatMemory(u MemoryUsage) string {
	return fmt.Sprintf("Memory: %dMB/%dMB", u.Used/bytesPerMB, u.Max/bytesPerMB)
}
