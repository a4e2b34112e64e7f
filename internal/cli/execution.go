package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/primesweep/internal/config"
	"github.com/agbru/primesweep/internal/format"
	"github.com/agbru/primesweep/internal/ui"
)

// PrintExecutionConfig displays the sweep about to run and the environment
// it runs in.
//
// Parameters:
//   - cfg: The application configuration.
//   - runID: The identifier of this run.
//   - out: The diagnostics writer (stderr).
func PrintExecutionConfig(cfg config.AppConfig, runID string, out io.Writer) {
	fmt.Fprintln(out, ui.Banner("Execution Configuration"))
	fmt.Fprintf(out, "Sweeping %s[2, %d]%s for primes, one goroutine per candidate (%s%s%s goroutines).\n",
		ui.ColorPrimary(), cfg.UpperLimit, ui.ColorReset(),
		ui.ColorYellow(), format.FormatCount(spawnCount(cfg.UpperLimit)), ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorSecondary(), runtime.NumCPU(), ui.ColorReset(), ui.ColorSecondary(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Run ID: %s\n\n", runID)
}

// spawnCount is the number of producer goroutines a sweep over [2, n] starts.
func spawnCount(n uint32) uint64 {
	if n < 2 {
		return 0
	}
	return uint64(n) - 1
}
