package app

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Version information, set at build time with
// -ldflags "-X github.com/agbru/primesweep/internal/app.Version=v1.2.3".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// valueFlags are the flags that consume the following argument as their
// value, spelled without leading dashes.
var valueFlags = map[string]bool{
	"u":            true,
	"upper-limit":  true,
	"o":            true,
	"output":       true,
	"metrics-file": true,
	"completion":   true,
}

// HasVersionFlag reports whether args request the version. It is checked
// before flag parsing so that --version works alongside otherwise invalid
// arguments. The value of a flag such as -o is never taken for a version
// request, so "-o -V" names an output file.
func HasVersionFlag(args []string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--version", "-version", "-V":
			return true
		case "--":
			return false
		}
		if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
			continue
		}
		if valueFlags[strings.TrimLeft(arg, "-")] {
			i++
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "primesweep %s\n", Version)
	fmt.Fprintf(out, "  commit:  %s\n", Commit)
	fmt.Fprintf(out, "  built:   %s\n", BuildDate)
	fmt.Fprintf(out, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
