package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/agbru/primesweep/internal/format"
	"github.com/agbru/primesweep/internal/orchestration"
	"github.com/agbru/primesweep/internal/prime"
	"github.com/agbru/primesweep/internal/sysmon"
	"github.com/agbru/primesweep/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// while a sweep runs.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for the running sweep.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, tracker *prime.Tracker, out io.Writer) {
	DisplayProgress(wg, done, tracker, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentResult prints the result line, the only thing written to stdout.
func (CLIResultPresenter) PresentResult(result prime.Result, out io.Writer) {
	DisplayResult(out, result)
}

// PresentStatistics prints the run statistics gathered in verbose mode.
func (CLIResultPresenter) PresentStatistics(stats orchestration.RunStatistics, out io.Writer) {
	res := stats.Result
	fmt.Fprintf(out, "\n%s--- Run Statistics ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Duration:          %s%s%s\n",
		ui.ColorYellow(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	fmt.Fprintf(out, "  Candidates tested: %s (%s)\n",
		format.FormatCount(res.Tested), format.FormatRate(res.Tested, res.Duration, "candidates"))
	fmt.Fprintf(out, "  Primes found:      %s%s%s\n",
		ui.ColorGreen(), format.FormatCount(uint64(len(res.Primes))), ui.ColorReset())
	if res.Dropped > 0 {
		fmt.Fprintf(out, "  Results dropped:   %s%s%s\n",
			ui.ColorRed(), format.FormatCount(res.Dropped), ui.ColorReset())
	}
	fmt.Fprintf(out, "  Peak goroutines:   %d\n", stats.PeakGoroutines)

	DisplayMemoryStats(stats, out)
	displayHostStats(stats.HostBefore, stats.HostAfter, out)
}

// DisplayMemoryStats shows the runtime memory change across a sweep.
func DisplayMemoryStats(stats orchestration.RunStatistics, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(stats.Memory.Allocated))
	fmt.Fprintf(out, "  Peak stack:      %s\n", format.FormatBytes(stats.Memory.PeakStackInuse))
	fmt.Fprintf(out, "  GC cycles:       %d\n", stats.Memory.GCCycles)
}

func displayHostStats(before, after sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\nHost:\n")
	fmt.Fprintf(out, "  Logical cores:   %d\n", after.LogicalCores)
	fmt.Fprintf(out, "  CPU:             %.1f%% -> %.1f%%\n", before.CPUPercent, after.CPUPercent)
	fmt.Fprintf(out, "  Memory:          %.1f%% -> %.1f%%\n", before.MemPercent, after.MemPercent)
	fmt.Fprintf(out, "  Load (1m):       %.2f\n", after.Load1)
}
