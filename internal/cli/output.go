// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatPrimeList], [FormatResultLine], [FormatProgress].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/primesweep/internal/format"
	"github.com/agbru/primesweep/internal/prime"
)

// FormatPrimeList renders primes as a bracketed, comma-separated list,
// e.g. "[2, 3, 5, 7]". An empty or nil slice renders as "[]".
func FormatPrimeList(primes []uint32) string {
	var b strings.Builder
	b.Grow(2 + len(primes)*8)
	b.WriteByte('[')
	for i, p := range primes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(uint64(p), 10))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatResultLine returns the single result line printed for a sweep.
func FormatResultLine(n uint32, primes []uint32) string {
	return fmt.Sprintf("Prime numbers upto %d: %s", n, FormatPrimeList(primes))
}

// DisplayResult writes the result line for result to out.
func DisplayResult(out io.Writer, result prime.Result) {
	fmt.Fprintln(out, FormatResultLine(result.UpperLimit, result.Primes))
}

// WriteResultToFile writes a sweep result to path, preceded by a commented
// header. Missing parent directories are created.
//
// Parameters:
//   - result: The finished sweep.
//   - runID: The identifier of the run, recorded in the header.
//   - path: The destination file. An empty path is a no-op.
//
// Returns:
//   - error: An error if the directory or file cannot be written.
func WriteResultToFile(result prime.Result, runID, path string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "# Prime Sweep Result\n")
	fmt.Fprintf(&b, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "# Run ID: %s\n", runID)
	fmt.Fprintf(&b, "# Upper limit: %d\n", result.UpperLimit)
	fmt.Fprintf(&b, "# Count: %d\n", len(result.Primes))
	fmt.Fprintf(&b, "# Duration: %s\n", format.FormatExecutionDuration(result.Duration))
	fmt.Fprintf(&b, "\n%s\n", FormatResultLine(result.UpperLimit, result.Primes))

	if _, err := io.WriteString(file, b.String()); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
