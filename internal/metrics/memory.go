package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory and scheduler reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from OS
	StackInuse   uint64 // bytes in goroutine stacks
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	Goroutines   int    // live goroutines at snapshot time
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		StackInuse:   m.StackInuse,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		Goroutines:   runtime.NumGoroutine(),
	}
}

// MemoryDelta summarizes what happened between two snapshots.
type MemoryDelta struct {
	Allocated      uint64 // bytes allocated in between
	GCCycles       uint32 // GC cycles completed in between
	PeakStackInuse uint64 // larger of the two stack readings
}

// Delta computes the change from before to after. Counters that went
// backwards (which the runtime never does) are clamped to zero.
func Delta(before, after MemorySnapshot) MemoryDelta {
	var d MemoryDelta
	if after.TotalAlloc > before.TotalAlloc {
		d.Allocated = after.TotalAlloc - before.TotalAlloc
	}
	if after.NumGC > before.NumGC {
		d.GCCycles = after.NumGC - before.NumGC
	}
	d.PeakStackInuse = max(before.StackInuse, after.StackInuse)
	return d
}
