package config

import (
	"bytes"
	"testing"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"UPPER_LIMIT", "250")
	t.Setenv(EnvPrefix+"QUIET", "yes")
	t.Setenv(EnvPrefix+"OUTPUT", "env.txt")
	t.Setenv(EnvPrefix+"METRICS_FILE", "env.prom")
	t.Setenv(EnvPrefix+"NO_COLOR", "1")

	var buf bytes.Buffer
	cfg, err := ParseConfig("primesweep", nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UpperLimit != 250 {
		t.Errorf("UpperLimit = %d, want 250", cfg.UpperLimit)
	}
	if !cfg.Quiet || !cfg.NoColor {
		t.Errorf("boolean overrides not applied: %+v", cfg)
	}
	if cfg.OutputFile != "env.txt" || cfg.MetricsFile != "env.prom" {
		t.Errorf("string overrides not applied: %+v", cfg)
	}
}

func TestApplyEnvOverrides_FlagWins(t *testing.T) {
	t.Setenv(EnvPrefix+"UPPER_LIMIT", "250")
	t.Setenv(EnvPrefix+"VERBOSE", "true")

	var buf bytes.Buffer
	cfg, err := ParseConfig("primesweep", []string{"-u", "30", "-v=false"}, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UpperLimit != 30 {
		t.Errorf("UpperLimit = %d, want 30 (flag should win)", cfg.UpperLimit)
	}
	if cfg.Verbose {
		t.Error("Verbose should stay false when the flag is set explicitly")
	}
}

func TestApplyEnvOverrides_InvalidValuesIgnored(t *testing.T) {
	t.Setenv(EnvPrefix+"UPPER_LIMIT", "lots")
	t.Setenv(EnvPrefix+"QUIET", "maybe")

	var buf bytes.Buffer
	cfg, err := ParseConfig("primesweep", nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UpperLimit != DefaultUpperLimit {
		t.Errorf("UpperLimit = %d, want default %d", cfg.UpperLimit, DefaultUpperLimit)
	}
	if cfg.Quiet {
		t.Error("unrecognized boolean should keep the default")
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"No", true, false},
		{"0", true, false},
		{"", true, true},
		{"sometimes", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
