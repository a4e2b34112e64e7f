//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"sync"

	"github.com/agbru/primesweep/internal/prime"
)

// ProgressReporter defines the interface for displaying sweep progress.
// This interface decouples the orchestration layer from the presentation layer,
// so the sweep itself never depends on terminal concerns.
type ProgressReporter interface {
	// DisplayProgress renders progress until done is closed. It is called in
	// its own goroutine and must call wg.Done before returning.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - done: Closed once the sweep has returned.
	//   - tracker: Live counters of the running sweep.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, tracker *prime.Tracker, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
// This allows passing a function directly where a ProgressReporter is expected.
type ProgressReporterFunc func(wg *sync.WaitGroup, done <-chan struct{}, tracker *prime.Tracker, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, tracker *prime.Tracker, out io.Writer) {
	f(wg, done, tracker, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It waits for the sweep to finish without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress blocks until done is closed.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, _ *prime.Tracker, _ io.Writer) {
	defer wg.Done()
	<-done
}

// ResultPresenter defines the interface for presenting sweep results.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentResult displays the final prime list.
	PresentResult(result prime.Result, out io.Writer)

	// PresentStatistics displays the run statistics gathered in verbose mode.
	PresentStatistics(stats RunStatistics, out io.Writer)
}
