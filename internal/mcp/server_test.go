package mcp

import (
	"testing"
)

// TestDefaultTimeRange verifies time range defaults (last 90 days) and parsing.
func TestDefaultTimeRange(t *testing.T) {
	// Both empty → defaults to last 90 days
	start, end, err := defaultTimeRange("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff := end.Sub(start)
	if diff.Hours() < 2159 || diff.Hours() > 2161 { // ~2160 hours = 90 days
		t.Errorf("default range = %.0f hours, want ~2160", diff.Hours())
	}

	// Explicit dates
	start, end, err = defaultTimeRange("2026-01-01", "2026-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Year() != 2026 || start.Month() != 1 || start.Day() != 1 {
		t.Errorf("start = %v, want 2026-01-01", start)
	}
	if end.Year() != 2026 || end.Month() != 1 || end.Day() != 31 {
		t.Errorf("end = %v, want 2026-01-31", end)
	}

	// RFC3339
	start, _, err = defaultTimeRange("2026-06-15T10:30:00Z", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Hour() != 10 || start.Minute() != 30 {
		t.Errorf("start = %v, want 10:30", start)
	}

	// Invalid
	_, _, err = defaultTimeRange("not-a-date", "")
	if err == nil {
		t.Error("expected error for invalid date")
	}
}

// TestParseReps verifies comma-separated rep parsing including the
// empty (skipped exercise) case.
func TestParseReps(t *testing.T) {
	reps, err := parseReps("8, 8,7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reps) != 3 || reps[0] != 8 || reps[2] != 7 {
		t.Errorf("parseReps = %v, want [8 8 7]", reps)
	}

	reps, err = parseReps("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reps) != 0 {
		t.Errorf("parseReps(blank) = %v, want empty", reps)
	}

	if _, err := parseReps("8,x"); err == nil {
		t.Error("expected error for non-numeric reps")
	}
}

// TestParseWeights verifies fractional weights parse correctly.
func TestParseWeights(t *testing.T) {
	weights, err := parseWeights("62.5,60")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(weights) != 2 || weights[0] != 62.5 || weights[1] != 60 {
		t.Errorf("parseWeights = %v, want [62.5 60]", weights)
	}

	if _, err := parseWeights("abc"); err == nil {
		t.Error("expected error for non-numeric weight")
	}
}
