package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "primesweep"

// SweepMetrics holds the Prometheus collectors for one process. It owns its
// registry rather than using the global default so tests can create
// independent instances.
type SweepMetrics struct {
	registry *prometheus.Registry

	tested      prometheus.Counter
	found       prometheus.Counter
	dropped     prometheus.Counter
	upperLimit  prometheus.Gauge
	duration    prometheus.Gauge
	lastSuccess prometheus.Gauge
}

// NewSweepMetrics creates and registers the sweep collectors together with
// the Go runtime and process collectors.
func NewSweepMetrics() *SweepMetrics {
	m := &SweepMetrics{
		registry: prometheus.NewRegistry(),
		tested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_tested_total",
			Help:      "Number of candidates whose primality test completed.",
		}),
		found: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "primes_found_total",
			Help:      "Number of candidates found to be prime.",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_dropped_total",
			Help:      "Number of primes that could not be delivered to the collector.",
		}),
		upperLimit: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "upper_limit",
			Help:      "Upper bound N of the last sweep.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Wall-clock duration of the last sweep.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time at which the last sweep completed.",
		}),
	}
	m.registry.MustRegister(
		m.tested, m.found, m.dropped, m.upperLimit, m.duration, m.lastSuccess,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCandidate records one completed primality test. It is safe for
// concurrent use and satisfies prime.Observer.
func (m *SweepMetrics) ObserveCandidate(isPrime bool) {
	m.tested.Inc()
	if isPrime {
		m.found.Inc()
	}
}

// ObserveSweep records the summary of a finished sweep.
func (m *SweepMetrics) ObserveSweep(upperLimit uint32, dropped uint64, d time.Duration) {
	m.upperLimit.Set(float64(upperLimit))
	m.dropped.Add(float64(dropped))
	m.duration.Set(d.Seconds())
	m.lastSuccess.SetToCurrentTime()
}

// Registry returns the underlying registry, e.g. for gathering in tests.
func (m *SweepMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics in the Prometheus text exposition format
// to path, suitable for the node_exporter textfile collector.
func (m *SweepMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
