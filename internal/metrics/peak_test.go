package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestPeakSampler_SeesBurst(t *testing.T) {
	t.Parallel()
	done := make(chan struct{})
	p := NewPeakSampler(time.Millisecond)
	p.Start(done)

	release := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-release
		}()
	}
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()
	close(done)

	if got := p.Wait(); got < 200 {
		t.Errorf("peak = %d, want at least 200", got)
	}
}

func TestNewPeakSampler_DefaultsInterval(t *testing.T) {
	t.Parallel()
	p := NewPeakSampler(0)
	if p.interval != time.Millisecond {
		t.Errorf("interval = %v, want 1ms", p.interval)
	}
}
