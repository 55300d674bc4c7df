package charts

import (
	"bytes"
	"testing"
	"time"

	"github.com/claude/fitplan/internal/models"
)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

// TestProgressionPNG verifies a multi-point progression renders to a PNG
// stream.
func TestProgressionPNG(t *testing.T) {
	points := []models.ProgressionPoint{
		{Date: day(1), AvgReps: 8, AvgWeightKg: 60},
		{Date: day(8), AvgReps: 8.5, AvgWeightKg: 62.5},
		{Date: day(15), AvgReps: 9, AvgWeightKg: 62.5},
	}

	var buf bytes.Buffer
	err := ProgressionPNG(&buf, models.Exercise{ID: 1, Name: "Squat"}, points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// PNG magic bytes.
	if buf.Len() < 8 || !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output is not a PNG (len=%d)", buf.Len())
	}
}

// TestProgressionPNGSinglePoint verifies a first recorded session still
// produces a chart (marker-only, padded axes) instead of an error.
func TestProgressionPNGSinglePoint(t *testing.T) {
	var buf bytes.Buffer
	points := []models.ProgressionPoint{{Date: day(1), AvgReps: 8, AvgWeightKg: 60}}
	err := ProgressionPNG(&buf, models.Exercise{ID: 2, Name: "Deadlift"}, points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output is not a PNG (len=%d)", buf.Len())
	}
}

// TestProgressionPNGNoData verifies the empty-series error path.
func TestProgressionPNGNoData(t *testing.T) {
	var buf bytes.Buffer
	err := ProgressionPNG(&buf, models.Exercise{ID: 2}, nil)
	if err == nil {
		t.Fatal("expected error for empty series, got none")
	}
}
