package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agbru/primesweep/internal/config"
	"github.com/agbru/primesweep/internal/metrics"
	"github.com/agbru/primesweep/internal/orchestration"
	"github.com/agbru/primesweep/internal/prime"
	"github.com/agbru/primesweep/internal/sysmon"
)

func TestCLIResultPresenter_PresentResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentResult(prime.Result{UpperLimit: 1, Primes: []uint32{}}, &buf)
	assert.Equal(t, "Prime numbers upto 1: []\n", buf.String())
}

func TestCLIResultPresenter_PresentStatistics(t *testing.T) {
	t.Parallel()
	stats := orchestration.RunStatistics{
		Result: prime.Result{
			UpperLimit: 1000,
			Primes:     make([]uint32, 168),
			Tested:     999,
			Duration:   2 * time.Millisecond,
		},
		Memory:         metrics.MemoryDelta{Allocated: 2048, GCCycles: 1, PeakStackInuse: 1 << 20},
		PeakGoroutines: 1003,
		HostBefore:     sysmon.Stats{CPUPercent: 5, MemPercent: 40},
		HostAfter:      sysmon.Stats{CPUPercent: 80, MemPercent: 41, Load1: 1.5, LogicalCores: 8},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentStatistics(stats, &buf)
	out := buf.String()

	for _, want := range []string{
		"--- Run Statistics ---",
		"Duration:          2ms",
		"Candidates tested: 999 (",
		"Primes found:      168",
		"Peak goroutines:   1003",
		"Total allocated: 2.0 KiB",
		"GC cycles:       1",
		"Logical cores:   8",
		"CPU:             5.0% -> 80.0%",
		"Load (1m):       1.50",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Results dropped")
}

func TestCLIResultPresenter_PresentStatisticsShowsDropped(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentStatistics(orchestration.RunStatistics{
		Result: prime.Result{UpperLimit: 10, Dropped: 2},
	}, &buf)
	assert.Contains(t, buf.String(), "Results dropped:   2")
}

func TestPrintExecutionConfig(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintExecutionConfig(config.AppConfig{UpperLimit: 1000}, "abc", &buf)
	out := buf.String()

	assert.Contains(t, out, "Execution Configuration")
	assert.Contains(t, out, "Sweeping [2, 1000] for primes")
	assert.Contains(t, out, "(999 goroutines)")
	assert.Contains(t, out, "logical processors, Go go")
	assert.True(t, strings.HasSuffix(out, "Run ID: abc\n\n"))
}

func TestSpawnCount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(0), spawnCount(0))
	assert.Equal(t, uint64(0), spawnCount(1))
	assert.Equal(t, uint64(1), spawnCount(2))
	assert.Equal(t, uint64(4294967294), spawnCount(4294967295))
}
