package metrics

import (
	"runtime"
	"time"
)

// PeakSampler records the highest goroutine count observed while a piece of
// work runs. With one goroutine per candidate this approximates how many
// producers were alive at once.
type PeakSampler struct {
	interval time.Duration
	result   chan int
}

// NewPeakSampler creates a sampler polling at the given interval.
func NewPeakSampler(interval time.Duration) *PeakSampler {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &PeakSampler{interval: interval, result: make(chan int, 1)}
}

// Start begins sampling in a new goroutine until done is closed.
func (p *PeakSampler) Start(done <-chan struct{}) {
	go func() {
		peak := runtime.NumGoroutine()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				p.result <- max(peak, runtime.NumGoroutine())
				return
			case <-ticker.C:
				peak = max(peak, runtime.NumGoroutine())
			}
		}
	}()
}

// Wait blocks until the sampler has stopped and returns the peak count.
func (p *PeakSampler) Wait() int {
	return <-p.result
}
