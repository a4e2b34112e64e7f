package prime

import "sync/atomic"

// Tracker exposes live counters for a running sweep. Producers update it with
// atomic operations; readers such as the progress spinner may call Snapshot
// at any time without synchronization.
type Tracker struct {
	total   atomic.Uint64
	spawned atomic.Uint64
	tested  atomic.Uint64
	found   atomic.Uint64
}

// Progress is a point-in-time copy of a Tracker's counters.
type Progress struct {
	// Total is the number of candidates the sweep will test (N-1 for N >= 2).
	Total uint64
	// Spawned is the number of producer goroutines started so far.
	Spawned uint64
	// Tested is the number of candidates whose primality test has completed.
	Tested uint64
	// Found is the number of candidates found to be prime.
	Found uint64
}

// NewTracker returns a zeroed Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// reset prepares the tracker for a sweep over total candidates.
func (t *Tracker) reset(total uint64) {
	t.total.Store(total)
	t.spawned.Store(0)
	t.tested.Store(0)
	t.found.Store(0)
}

func (t *Tracker) recordSpawn() {
	t.spawned.Add(1)
}

func (t *Tracker) recordTested(isPrime bool) {
	if isPrime {
		t.found.Add(1)
	}
	t.tested.Add(1)
}

// Snapshot returns the current counter values.
func (t *Tracker) Snapshot() Progress {
	return Progress{
		Total:   t.total.Load(),
		Spawned: t.spawned.Load(),
		Tested:  t.tested.Load(),
		Found:   t.found.Load(),
	}
}

// Fraction returns Tested/Total in [0, 1]. An empty sweep counts as complete.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1.0
	}
	f := float64(p.Tested) / float64(p.Total)
	if f > 1.0 {
		return 1.0
	}
	return f
}
