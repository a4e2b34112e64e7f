package prime

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/primesweep/internal/errors"
	"github.com/agbru/primesweep/internal/logging"
)

var tracer = otel.Tracer("github.com/agbru/primesweep/internal/prime")

// Result is the outcome of a sweep over [2, UpperLimit].
type Result struct {
	// UpperLimit is the inclusive bound N that was swept.
	UpperLimit uint32
	// Primes holds every prime in [2, UpperLimit] in ascending order.
	// It is empty, never nil, when UpperLimit < 2.
	Primes []uint32
	// Tested is the number of candidates whose primality test ran.
	// It equals UpperLimit-1 for UpperLimit >= 2.
	Tested uint64
	// Dropped counts primes that could not be handed to the collector.
	// It is always zero unless the fan-in invariant is broken.
	Dropped uint64
	// Duration is the wall-clock time of the whole sweep, sort included.
	Duration time.Duration
}

// Sweep returns every prime in [2, n].
//
// One goroutine is started per candidate with no limit on how many run at
// once. Each goroutine tests its own candidate and, when it is prime, sends
// it to a shared unbuffered channel. The calling goroutine is the single
// consumer. The channel is closed only after the task group
// has returned, so no producer can ever observe it closed. Results arrive in
// arbitrary order and are sorted once the channel is drained.
//
// The context carries tracing information only. Once spawned, a candidate's
// test always runs to completion.
func Sweep(ctx context.Context, n uint32, opts ...Option) Result {
	cfg := newSweepConfig(opts)
	_, span := tracer.Start(ctx, "prime.Sweep",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.Int64("prime.upper_limit", int64(n))))
	defer span.End()

	start := time.Now()
	var total uint64
	if n >= 2 {
		total = uint64(n) - 1
	}
	cfg.tracker.reset(total)

	primes := make([]uint32, 0, estimatePrimeCount(n))
	if total == 0 {
		return Result{UpperLimit: n, Primes: primes, Duration: time.Since(start)}
	}

	results := make(chan uint32)
	var g errgroup.Group
	// Counted locally: the tracker may be shared and is for display only.
	var tested, dropped atomic.Uint64

	cfg.logger.Debug("spawning candidate tasks", logging.Uint64("tasks", total))
	// i is 64-bit so the loop terminates when n == math.MaxUint32.
	for i := uint64(2); i <= uint64(n); i++ {
		candidate := uint32(i)
		cfg.tracker.recordSpawn()
		g.Go(func() error {
			isPrime := IsPrime(candidate)
			tested.Add(1)
			cfg.tracker.recordTested(isPrime)
			cfg.observer.ObserveCandidate(isPrime)
			if isPrime && !deliver(results, candidate, cfg.logger) {
				dropped.Add(1)
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(results)
	}()

	for p := range results {
		primes = append(primes, p)
	}
	slices.Sort(primes)

	res := Result{
		UpperLimit: n,
		Primes:     primes,
		Tested:     tested.Load(),
		Dropped:    dropped.Load(),
		Duration:   time.Since(start),
	}
	span.SetAttributes(
		attribute.Int("prime.count", len(res.Primes)),
		attribute.Int64("prime.tested", int64(res.Tested)),
	)
	cfg.logger.Debug("sweep collected",
		logging.Int("primes", len(res.Primes)),
		logging.Uint64("tested", res.Tested),
		logging.Uint64("dropped", res.Dropped),
	)
	return res
}

// deliver sends candidate to the collector. A send on a closed channel is
// recovered, logged and reported as false instead of crashing the process.
func deliver(results chan<- uint32, candidate uint32, logger logging.Logger) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			cause, isErr := r.(error)
			if !isErr {
				cause = fmt.Errorf("%v", r)
			}
			err := apperrors.DeliveryError{Candidate: candidate, Cause: cause}
			logger.Warn("prime result dropped", logging.Err(err), logging.Uint64("candidate", uint64(candidate)))
			ok = false
		}
	}()
	results <- candidate
	return true
}
