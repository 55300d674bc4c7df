package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/claude/fitplan/internal/models"
)

const exercisesYAML = `
- id: 1
  name: Squat
  sets: 4
  reps: [5, 8]
  rest: 120
- id: 2
  name: Chin-up
  reps: [6, 99]
  comment: "full hang"
- id: 3
  name: Plank
  reps: [60]
`

const workoutsYAML = `
- id: 1
  name: Lower A
  exercises: [1, 3]
  paired_sets: [[1, 3]]
- id: 2
  name: Upper A
  exercises: [2]
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadExercises verifies defaults and rep-range normalization.
func TestLoadExercises(t *testing.T) {
	exercises, err := LoadExercises(writeTemp(t, "exercises.yaml", exercisesYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exercises) != 3 {
		t.Fatalf("got %d exercises, want 3", len(exercises))
	}

	squat := exercises[0]
	if squat.Sets != 4 {
		t.Errorf("squat sets = %d, want 4", squat.Sets)
	}
	if squat.Reps != (models.RepRange{Min: 5, Max: 8}) {
		t.Errorf("squat reps = %+v, want {5 8}", squat.Reps)
	}
	if squat.RestSec == nil || *squat.RestSec != 120 {
		t.Errorf("squat rest = %v, want 120", squat.RestSec)
	}

	chinup := exercises[1]
	if chinup.Sets != models.DefaultSets {
		t.Errorf("chin-up sets = %d, want default %d", chinup.Sets, models.DefaultSets)
	}
	if got := chinup.Reps.String(); got != "6+" {
		t.Errorf("chin-up reps = %q, want %q", got, "6+")
	}
	if chinup.RestSec != nil {
		t.Errorf("chin-up rest = %v, want nil", chinup.RestSec)
	}

	plank := exercises[2]
	if plank.Reps != (models.RepRange{Min: 60, Max: 60}) {
		t.Errorf("plank reps = %+v, want exact 60", plank.Reps)
	}
}

// TestLoadWorkouts verifies paired sets parse and nil lists normalize.
func TestLoadWorkouts(t *testing.T) {
	workouts, err := LoadWorkouts(writeTemp(t, "workouts.yaml", workoutsYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("got %d workouts, want 2", len(workouts))
	}

	lower := workouts[0]
	if len(lower.PairedSets) != 1 || lower.PairedSets[0][0] != 1 || lower.PairedSets[0][1] != 3 {
		t.Errorf("paired sets = %v, want [[1 3]]", lower.PairedSets)
	}

	upper := workouts[1]
	if upper.PairedSets == nil || len(upper.PairedSets) != 0 {
		t.Errorf("missing paired_sets should normalize to empty, got %v", upper.PairedSets)
	}
}

// TestLoadExercisesMissingFile verifies a readable error for absent paths.
func TestLoadExercisesMissingFile(t *testing.T) {
	if _, err := LoadExercises(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

// TestExerciseMap verifies indexing by id.
func TestExerciseMap(t *testing.T) {
	m := ExerciseMap([]models.Exercise{{ID: 7, Name: "Row"}})
	if m[7].Name != "Row" {
		t.Errorf("map[7] = %+v, want Row", m[7])
	}
	if _, ok := m[8]; ok {
		t.Error("unexpected entry for id 8")
	}
}
