package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatRate formats a throughput of count items over d, choosing a unit
// prefix so the number stays readable (e.g. "1.25M candidates/s").
func FormatRate(count uint64, d time.Duration, unit string) string {
	if d <= 0 {
		return "n/a"
	}
	rate := float64(count) / d.Seconds()
	switch {
	case rate >= 1e9:
		return fmt.Sprintf("%.2fG %s/s", rate/1e9, unit)
	case rate >= 1e6:
		return fmt.Sprintf("%.2fM %s/s", rate/1e6, unit)
	case rate >= 1e3:
		return fmt.Sprintf("%.2fK %s/s", rate/1e3, unit)
	}
	return fmt.Sprintf("%.0f %s/s", rate, unit)
}
