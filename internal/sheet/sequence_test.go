package sheet

import (
	"reflect"
	"testing"

	"github.com/claude/fitplan/internal/models"
)

func catalogOf(ids ...int) map[int]models.Exercise {
	m := make(map[int]models.Exercise, len(ids))
	for _, id := range ids {
		m[id] = models.Exercise{ID: id, Name: exName(id), Sets: 3, Reps: models.RepRange{Min: 8, Max: 12}}
	}
	return m
}

func exName(id int) string {
	return map[int]string{
		1: "Squat", 2: "Bench Press", 3: "Deadlift", 4: "Row", 5: "Press",
	}[id]
}

// entryOrder flattens blocks into the exercise id order they would print in.
func entryOrder(blocks []Block) []int {
	var ids []int
	for _, b := range blocks {
		ids = append(ids, b.Primary.ExerciseID)
		for _, p := range b.Partners {
			ids = append(ids, p.ExerciseID)
		}
	}
	return ids
}

// TestSequencePairedExample verifies the canonical case: workout [1,2,3,4]
// with pair (2,4) yields blocks (1), (2,[4]), (3) and print order 1,2,4,3.
func TestSequencePairedExample(t *testing.T) {
	blocks := Sequence([]int{1, 2, 3, 4}, Pairs([][]int{{2, 4}}), catalogOf(1, 2, 3, 4))

	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3: %+v", len(blocks), blocks)
	}
	if blocks[0].Primary.ExerciseID != 1 || len(blocks[0].Partners) != 0 {
		t.Errorf("block 0 = %+v, want primary 1 with no partners", blocks[0])
	}
	if blocks[1].Primary.ExerciseID != 2 || len(blocks[1].Partners) != 1 || blocks[1].Partners[0].ExerciseID != 4 {
		t.Errorf("block 1 = %+v, want primary 2 with partner 4", blocks[1])
	}
	if !blocks[1].Partners[0].Partner {
		t.Error("partner entry not flagged as partner")
	}
	if blocks[2].Primary.ExerciseID != 3 {
		t.Errorf("block 2 primary = %d, want 3", blocks[2].Primary.ExerciseID)
	}
	if got, want := entryOrder(blocks), []int{1, 2, 4, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("entry order = %v, want %v", got, want)
	}
}

// TestSequencePartition verifies every exercise id ends up in exactly one
// block, as primary or partner, regardless of pairing.
func TestSequencePartition(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5}
	blocks := Sequence(ids, Pairs([][]int{{1, 3}, {2, 5}, {4, 1}}), catalogOf(ids...))

	seen := make(map[int]int)
	for _, id := range entryOrder(blocks) {
		seen[id]++
	}
	for _, id := range ids {
		if seen[id] != 1 {
			t.Errorf("exercise %d emitted %d times, want exactly once", id, seen[id])
		}
	}
	if len(seen) != len(ids) {
		t.Errorf("emitted %d distinct ids, want %d", len(seen), len(ids))
	}
}

// TestSequenceOneHopChains verifies the one-hop partner expansion: with
// pairs (1,2) and (2,3), exercise 3 is not pulled into 1's block and starts
// its own block later.
func TestSequenceOneHopChains(t *testing.T) {
	blocks := Sequence([]int{1, 2, 3}, Pairs([][]int{{1, 2}, {2, 3}}), catalogOf(1, 2, 3))

	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %+v", len(blocks), blocks)
	}
	if got, want := entryOrder(blocks), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("entry order = %v, want %v", got, want)
	}
	if blocks[1].Primary.ExerciseID != 3 || len(blocks[1].Partners) != 0 {
		t.Errorf("block 1 = %+v, want standalone primary 3", blocks[1])
	}
}

// TestSequencePartnerOutsideWorkout verifies that a declared partner absent
// from the workout's exercise list is not pulled in.
func TestSequencePartnerOutsideWorkout(t *testing.T) {
	blocks := Sequence([]int{1, 2}, Pairs([][]int{{1, 42}}), catalogOf(1, 2))
	if got, want := entryOrder(blocks), []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("entry order = %v, want %v", got, want)
	}
}

// TestSequenceMissingExercise verifies that an id absent from the catalog
// produces a placeholder entry with default sets and empty display fields.
func TestSequenceMissingExercise(t *testing.T) {
	blocks := Sequence([]int{99}, Pairs(nil), catalogOf())

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	e := blocks[0].Primary
	if e.Name != "Exercise #99 (missing)" {
		t.Errorf("placeholder name = %q, want %q", e.Name, "Exercise #99 (missing)")
	}
	if e.Sets != models.DefaultSets {
		t.Errorf("placeholder sets = %d, want %d", e.Sets, models.DefaultSets)
	}
	if e.RepsText != "" || e.Comment != "" || e.RestSec != nil {
		t.Errorf("placeholder carries display fields: %+v", e)
	}
}

// TestSequenceEmptyWorkout verifies an empty exercise list yields no blocks.
func TestSequenceEmptyWorkout(t *testing.T) {
	if blocks := Sequence(nil, Pairs(nil), nil); len(blocks) != 0 {
		t.Errorf("got %d blocks for empty workout, want 0", len(blocks))
	}
}
