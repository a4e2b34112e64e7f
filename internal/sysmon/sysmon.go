// Package sysmon samples host-wide CPU, memory and load figures so that a
// verbose run can show how busy the machine was around the sweep.
package sysmon

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent   float64 // 0.0 .. 100.0, averaged over all cores
	MemPercent   float64 // 0.0 .. 100.0
	Load1        float64 // 1-minute load average, 0 where unsupported
	LogicalCores int
}

// Sample collects a single system-wide snapshot. CPU uses interval=0, i.e.
// the delta since the previous call in this process. Any figure that cannot
// be read is left at zero.
func Sample(ctx context.Context) Stats {
	var s Stats
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	if avg, err := load.AvgWithContext(ctx); err == nil && avg != nil {
		s.Load1 = avg.Load1
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		s.LogicalCores = n
	}
	return s
}
