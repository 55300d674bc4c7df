package sheet

import (
	"testing"

	"github.com/claude/fitplan/internal/models"
)

// TestRenderStateRoundTrip verifies mark/check behavior across hash changes.
func TestRenderStateRoundTrip(t *testing.T) {
	state, err := OpenRenderState(t.TempDir())
	if err != nil {
		t.Fatalf("open state: %v", err)
	}
	defer state.Close()

	current, err := state.IsCurrent(1, "abc")
	if err != nil {
		t.Fatalf("IsCurrent: %v", err)
	}
	if current {
		t.Error("fresh state reports workout as current")
	}

	if err := state.MarkRendered(1, "abc"); err != nil {
		t.Fatalf("MarkRendered: %v", err)
	}
	if current, _ = state.IsCurrent(1, "abc"); !current {
		t.Error("marked workout not reported as current")
	}
	if current, _ = state.IsCurrent(1, "changed"); current {
		t.Error("stale hash reported as current")
	}

	// Re-marking with a new hash replaces the old one.
	if err := state.MarkRendered(1, "changed"); err != nil {
		t.Fatalf("MarkRendered: %v", err)
	}
	if current, _ = state.IsCurrent(1, "abc"); current {
		t.Error("old hash still current after replace")
	}
}

// TestHashWorkoutStability verifies the hash ignores unreferenced catalog
// entries and changes when the definition changes.
func TestHashWorkoutStability(t *testing.T) {
	exercises := map[int]models.Exercise{
		1: {ID: 1, Name: "Squat", Sets: 3},
		2: {ID: 2, Name: "Bench", Sets: 3},
		9: {ID: 9, Name: "Unreferenced", Sets: 3},
	}
	w := models.Workout{ID: 1, Name: "A", Exercises: []int{1, 2}}

	h1 := HashWorkout(w, exercises)
	if h2 := HashWorkout(w, exercises); h2 != h1 {
		t.Error("hash not deterministic")
	}

	delete(exercises, 9)
	if h2 := HashWorkout(w, exercises); h2 != h1 {
		t.Error("hash depends on unreferenced catalog entries")
	}

	exercises[1] = models.Exercise{ID: 1, Name: "Squat", Sets: 5}
	if h2 := HashWorkout(w, exercises); h2 == h1 {
		t.Error("hash unchanged after exercise definition change")
	}
}
