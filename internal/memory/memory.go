// Package memory reports the process's own memory footprint for the
// driver's periodic status lines. The reference solver stubs this out
// entirely; Go's runtime exposes the real numbers, so there is no
// reason to print zeros here.
package memory

import (
	"fmt"
	"runtime"
)

const mb = 1024 * 1024

// Stats is a snapshot of the Go runtime's memory bookkeeping at one
// point in time.
type Stats struct {
	UsedMB  float64
	FreeMB  float64
	AllocMB float64
	MaxMB   float64
}

// Snapshot reads runtime.MemStats and converts the counters the status
// line cares about into megabytes.
func Snapshot() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	used := float64(m.HeapInuse) / mb
	free := float64(m.HeapIdle) / mb
	alloc := float64(m.HeapAlloc) / mb
	max := float64(m.Sys) / mb

	return Stats{UsedMB: used, FreeMB: free, AllocMB: alloc, MaxMB: max}
}

// String renders s in the bracketed status-line form the driver
// embeds in each progress message.
func (s Stats) String() string {
	return fmt.Sprintf("[Used: %.2f MB, Free: %.2f MB, Alloc: %.2f MB, MaxAlloc: %.2f MB]",
		s.UsedMB, s.FreeMB, s.AllocMB, s.MaxMB)
}
