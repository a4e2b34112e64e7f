package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/primesweep/internal/errors"
	"github.com/agbru/primesweep/internal/logging"
	"github.com/agbru/primesweep/internal/metrics"
	"github.com/agbru/primesweep/internal/prime"
	"github.com/agbru/primesweep/internal/sysmon"
)

var tracer = otel.Tracer("github.com/agbru/primesweep/internal/orchestration")

// peakSampleInterval is how often the goroutine count is sampled in verbose mode.
const peakSampleInterval = 2 * time.Millisecond

// SweepOptions configures ExecuteSweep.
type SweepOptions struct {
	// Logger receives diagnostics. Nil means discard.
	Logger logging.Logger
	// Metrics, when non-nil, is fed every candidate and the sweep summary.
	Metrics *metrics.SweepMetrics
	// CollectStats enables memory and host sampling around the sweep.
	CollectStats bool
}

// RunStatistics holds the diagnostics gathered around one sweep.
type RunStatistics struct {
	// Result is the sweep the statistics describe.
	Result prime.Result
	// Memory is the runtime memory change across the sweep.
	Memory metrics.MemoryDelta
	// PeakGoroutines is the highest goroutine count seen by the sampler.
	PeakGoroutines int
	// HostBefore and HostAfter are host-wide samples bracketing the sweep.
	HostBefore sysmon.Stats
	HostAfter  sysmon.Stats
}

// SweepOutcome is what ExecuteSweep returns.
type SweepOutcome struct {
	Result prime.Result
	// Stats is nil unless SweepOptions.CollectStats was set.
	Stats *RunStatistics
}

// ExecuteSweep runs one prime sweep over [2, n] and coordinates the display
// of progress updates while it runs.
//
// The progress reporter runs in its own goroutine and polls the sweep's
// Tracker; it is told to stop once the sweep has returned and is joined
// before ExecuteSweep returns, so no output is written afterwards.
//
// Parameters:
//   - ctx: The context carrying tracing information.
//   - n: The inclusive upper bound.
//   - opts: Logging, metrics and statistics options.
//   - progressReporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - SweepOutcome: The sweep result and optional statistics.
func ExecuteSweep(ctx context.Context, n uint32, opts SweepOptions, progressReporter ProgressReporter, out io.Writer) SweepOutcome {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	ctx, span := tracer.Start(ctx, "orchestration.ExecuteSweep")
	defer span.End()

	var (
		memCollector *metrics.MemoryCollector
		memBefore    metrics.MemorySnapshot
		stats        *RunStatistics
	)
	if opts.CollectStats {
		memCollector = metrics.NewMemoryCollector()
		stats = &RunStatistics{HostBefore: sysmon.Sample(ctx)}
		memBefore = memCollector.Snapshot()
	}

	tracker := prime.NewTracker()
	sweepOpts := []prime.Option{prime.WithLogger(logger), prime.WithTracker(tracker)}
	if opts.Metrics != nil {
		sweepOpts = append(sweepOpts, prime.WithObserver(opts.Metrics))
	}

	done := make(chan struct{})
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, done, tracker, out)

	var peak *metrics.PeakSampler
	if opts.CollectStats {
		peak = metrics.NewPeakSampler(peakSampleInterval)
		peak.Start(done)
	}

	logger.Debug("sweep starting", logging.Uint64("upper_limit", uint64(n)))
	result := prime.Sweep(ctx, n, sweepOpts...)

	close(done)
	displayWg.Wait()

	if opts.Metrics != nil {
		opts.Metrics.ObserveSweep(n, result.Dropped, result.Duration)
	}
	if result.Dropped > 0 {
		span.RecordError(fmt.Errorf("%d prime results dropped", result.Dropped))
		span.SetStatus(codes.Error, "results dropped")
		logger.Warn("sweep finished with dropped results", logging.Uint64("dropped", result.Dropped))
	}
	span.SetAttributes(
		attribute.Int64("prime.upper_limit", int64(n)),
		attribute.Int("prime.count", len(result.Primes)),
	)
	logger.Info("sweep finished",
		logging.Uint64("upper_limit", uint64(n)),
		logging.Int("primes", len(result.Primes)),
		logging.Uint64("tested", result.Tested),
		logging.Field{Key: "duration", Value: result.Duration},
	)

	if stats != nil {
		memAfter := memCollector.Snapshot()
		stats.Result = result
		stats.Memory = metrics.Delta(memBefore, memAfter)
		stats.PeakGoroutines = peak.Wait()
		stats.HostAfter = sysmon.Sample(ctx)
	}

	return SweepOutcome{Result: result, Stats: stats}
}

// PresentOutcome hands the outcome to the presenter and returns the exit code.
// The result goes to out; run statistics, when gathered, go to diag so that
// out carries nothing but the result. Dropped results are reported by
// ExecuteSweep's logging and do not change the exit code.
func PresentOutcome(outcome SweepOutcome, presenter ResultPresenter, out, diag io.Writer) int {
	presenter.PresentResult(outcome.Result, out)
	if outcome.Stats != nil {
		presenter.PresentStatistics(*outcome.Stats, diag)
	}
	return apperrors.ExitSuccess
}
