//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/primesweep/internal/format"
	"github.com/agbru/primesweep/internal/prime"
	"github.com/agbru/primesweep/internal/ui"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the `DisplayProgress` function from a
// specific spinner implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the suffix under the spinner's lock, since the
// animation goroutine reads it concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress renders a spinner with a progress bar fed by the sweep's
// tracker until done is closed. It then prints a final, full bar so the last
// frame always reflects the finished sweep.
//
// Parameters:
//   - wg: Signalled when the display has stopped.
//   - done: Closed by the orchestrator once the sweep has returned.
//   - tracker: Live counters of the running sweep.
//   - out: The writer for progress output.
func DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, tracker *prime.Tracker, out io.Writer) {
	defer wg.Done()

	s := newSpinner(spinnerWriter(out))
	s.UpdateSuffix(" " + FormatProgress(tracker.Snapshot()))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.UpdateSuffix(" " + FormatProgress(tracker.Snapshot()))
		case <-done:
			s.Stop()
			fmt.Fprintln(out, FormatProgress(tracker.Snapshot()))
			return
		}
	}
}

// spinnerWriter points the spinner at out. A file is passed as such so the
// spinner checks that file, not stdout, for a terminal before animating.
func spinnerWriter(out io.Writer) spinner.Option {
	if f, ok := out.(*os.File); ok {
		return spinner.WithWriterFile(f)
	}
	return spinner.WithWriter(out)
}

// FormatProgress renders one progress line: bar, percentage and counters.
func FormatProgress(p prime.Progress) string {
	frac := p.Fraction()
	return fmt.Sprintf("%s%s%s %6.2f%% (%s/%s tested, %s%s%s primes)",
		ui.ColorPrimary(), progressBar(frac, ProgressBarWidth), ui.ColorReset(),
		frac*100,
		format.FormatCount(p.Tested), format.FormatCount(p.Total),
		ui.ColorGreen(), format.FormatCount(p.Found), ui.ColorReset())
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0.0), 1.0)
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
