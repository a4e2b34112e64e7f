package prime

import "github.com/agbru/primesweep/internal/logging"

// Observer receives a notification for every candidate once its primality
// test completes. Implementations are called concurrently from producer
// goroutines and must be safe for concurrent use.
type Observer interface {
	ObserveCandidate(isPrime bool)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(isPrime bool)

// ObserveCandidate calls f(isPrime).
func (f ObserverFunc) ObserveCandidate(isPrime bool) { f(isPrime) }

type noopObserver struct{}

func (noopObserver) ObserveCandidate(bool) {}

// Option configures a Sweep.
type Option func(*sweepConfig)

type sweepConfig struct {
	logger   logging.Logger
	tracker  *Tracker
	observer Observer
}

// WithLogger sets the logger used for sweep diagnostics and delivery anomalies.
func WithLogger(l logging.Logger) Option {
	return func(c *sweepConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracker makes the sweep publish live counters to t. The tracker is reset
// at the start of the sweep.
func WithTracker(t *Tracker) Option {
	return func(c *sweepConfig) {
		if t != nil {
			c.tracker = t
		}
	}
}

// WithObserver registers an Observer notified after every primality test.
func WithObserver(o Observer) Option {
	return func(c *sweepConfig) {
		if o != nil {
			c.observer = o
		}
	}
}

func newSweepConfig(opts []Option) sweepConfig {
	cfg := sweepConfig{
		logger:   logging.Nop(),
		tracker:  NewTracker(),
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
