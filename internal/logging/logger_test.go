package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	testErr := errors.New("send on closed channel")
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("mode", "quiet"), "mode", "quiet"},
		{"Int", Int("workers", 8), "workers", 8},
		{"Uint64", Uint64("upper_limit", 4294967295), "upper_limit", uint64(4294967295)},
		{"Float64", Float64("rate", 1.5), "rate", 1.5},
		{"Err", Err(testErr), "error", testErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.value)
			}
		})
	}
}

// TestNewLogger tests the component logger constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "sweep")
	logger.Info("sweep finished", Uint64("primes", 168))

	output := buf.String()
	for _, want := range []string{`"component":"sweep"`, "sweep finished", `"primes":168`} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

// TestZerologAdapter_Levels tests each level method.
func TestZerologAdapter_Levels(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info",
			log:      func(l Logger) { l.Info("started", String("run_id", "abc")) },
			contains: []string{`"level":"info"`, "started", "abc"},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("spawned", Int("tasks", 999)) },
			contains: []string{`"level":"debug"`, "spawned", "999"},
		},
		{
			name:     "warn",
			log:      func(l Logger) { l.Warn("prime dropped", Uint64("candidate", 7)) },
			contains: []string{`"level":"warn"`, "prime dropped", "7"},
		},
		{
			name:     "error",
			log:      func(l Logger) { l.Error("write failed", errors.New("disk full")) },
			contains: []string{`"level":"error"`, "write failed", "disk full"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("tested %d of %d", 10, 20) },
			contains: []string{"tested 10 of 20"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("hello", "world") },
			contains: []string{"hello world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)))
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output should contain %q, got: %s", want, buf.String())
				}
			}
		})
	}
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint32 field", Field{Key: "n", Value: uint32(4294967295)}, "4294967295"},
		{"duration field", Field{Key: "elapsed", Value: 1500 * time.Millisecond}, "1500"},
		{"bool field", Field{Key: "quiet", Value: true}, "true"},
		{"error field", Field{Key: "cause", Value: errors.New("oops")}, "oops"},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("test", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, buf.String())
			}
		})
	}
}

// TestZerologAdapter_With tests that child loggers carry bound fields.
func TestZerologAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	child := NewLogger(&buf, "app").With(String("run_id", "1234"))
	child.Info("first")
	child.Info("second")

	if got := strings.Count(buf.String(), `"run_id":"1234"`); got != 2 {
		t.Errorf("run_id should appear on both entries, got %d in: %s", got, buf.String())
	}
}

// TestNewConsoleLogger tests the console logger respects its level.
func TestNewConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "app", zerolog.WarnLevel, true)
	logger.Info("hidden")
	logger.Warn("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("info entry should be filtered at warn level, got: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("warn entry should be written, got: %s", output)
	}
}

// TestStdLoggerAdapter tests the StdLoggerAdapter level prefixes.
func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{"info", func(l Logger) { l.Info("ready", String("mode", "cli")) }, []string{"[INFO]", "ready", "mode=cli"}},
		{"debug", func(l Logger) { l.Debug("trace", Int("line", 42)) }, []string{"[DEBUG]", "trace", "line=42"}},
		{"warn", func(l Logger) { l.Warn("dropped") }, []string{"[WARN]", "dropped"}},
		{"error", func(l Logger) { l.Error("failed", errors.New("boom")) }, []string{"[ERROR]", "failed", "boom"}},
		{"printf", func(l Logger) { l.Printf("value is %d", 123) }, []string{"value is 123"}},
		{"println", func(l Logger) { l.Println("a", "b") }, []string{"a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output should contain %q, got: %s", want, buf.String())
				}
			}
		})
	}
}

// TestLoggerInterface verifies the adapters implement the Logger interface.
func TestLoggerInterface(t *testing.T) {
	var _ Logger = NewDefaultLogger()
	var _ Logger = NewStdLoggerAdapter(log.New(&bytes.Buffer{}, "", 0))
	var _ Logger = Nop()
}
