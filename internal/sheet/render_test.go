package sheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/claude/fitplan/internal/models"
)

// TestRenderPDFProducesDocument verifies a populated workout renders to a
// non-empty PDF stream.
func TestRenderPDFProducesDocument(t *testing.T) {
	rest := 90
	exercises := map[int]models.Exercise{
		1: {ID: 1, Name: "Squat", Sets: 4, Reps: models.RepRange{Min: 5, Max: 8}, RestSec: &rest},
		2: {ID: 2, Name: "Leg Curl", Sets: 3, Reps: models.RepRange{Min: 10, Max: models.ToFailure}, Comment: "slow negatives"},
	}
	workout := models.Workout{
		ID:         1,
		Name:       "Leg Day",
		Exercises:  []int{1, 2},
		PairedSets: [][]int{{1, 2}},
	}

	var buf bytes.Buffer
	if err := RenderPDF(&buf, workout, exercises, A4Geometry()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Errorf("output does not start with %%PDF header")
	}
}

// TestRenderPDFEmptyWorkout verifies an empty workout still yields a titled
// single-page document rather than an error.
func TestRenderPDFEmptyWorkout(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPDF(&buf, models.Workout{ID: 3, Name: "Rest Day"}, nil, A4Geometry())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty workout produced no output")
	}
}

// TestRenderPDFInvalidGeometry verifies geometry errors surface to the
// caller instead of producing a broken document.
func TestRenderPDFInvalidGeometry(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPDF(&buf, models.Workout{ID: 1, Exercises: []int{1}}, nil, Geometry{})
	if err == nil {
		t.Fatal("expected geometry error, got none")
	}
}

// TestSanitize verifies filename sanitization.
func TestSanitize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Push Day (Heavy)", "Push_Day_Heavy"},
		{"legs & core!", "legs_core"},
		{"already_safe-1", "already_safe-1"},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
