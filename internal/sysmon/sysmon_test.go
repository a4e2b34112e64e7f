package sysmon

import (
	"context"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample(context.Background())
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
	if s.Load1 < 0 {
		t.Errorf("Load1 should not be negative: %f", s.Load1)
	}
}

func TestSample_MemPercentNonZero(t *testing.T) {
	s := Sample(context.Background())
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
	if s.LogicalCores < 1 {
		t.Errorf("expected at least one logical core, got %d", s.LogicalCores)
	}
}
