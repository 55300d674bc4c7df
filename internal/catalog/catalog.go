// Package catalog loads exercise and workout definitions from YAML files.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/claude/fitplan/internal/models"
)

// rawExercise mirrors the YAML shape; reps come in as a 1- or 2-element
// list and optional fields may be absent entirely.
type rawExercise struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Sets    int    `yaml:"sets"`
	Reps    []int  `yaml:"reps"`
	Comment string `yaml:"comment"`
	Rest    *int   `yaml:"rest"`
}

// LoadExercises reads the exercise catalog. A missing sets field defaults
// to models.DefaultSets; a single-value reps list means an exact target.
func LoadExercises(path string) ([]models.Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading exercise catalog: %w", err)
	}

	var raw []rawExercise
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing exercise catalog %s: %w", path, err)
	}

	exercises := make([]models.Exercise, 0, len(raw))
	for _, r := range raw {
		ex := models.Exercise{
			ID:      r.ID,
			Name:    r.Name,
			Sets:    r.Sets,
			Comment: r.Comment,
			RestSec: r.Rest,
		}
		if ex.Sets <= 0 {
			ex.Sets = models.DefaultSets
		}
		switch len(r.Reps) {
		case 0:
		case 1:
			ex.Reps = models.RepRange{Min: r.Reps[0], Max: r.Reps[0]}
		default:
			ex.Reps = models.RepRange{Min: r.Reps[0], Max: r.Reps[1]}
		}
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

// LoadWorkouts reads the workout catalog. Nil exercise and paired-set
// lists normalize to empty so downstream code never branches on nil.
func LoadWorkouts(path string) ([]models.Workout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workout catalog: %w", err)
	}

	var workouts []models.Workout
	if err := yaml.Unmarshal(data, &workouts); err != nil {
		return nil, fmt.Errorf("parsing workout catalog %s: %w", path, err)
	}

	for i := range workouts {
		if workouts[i].Exercises == nil {
			workouts[i].Exercises = []int{}
		}
		if workouts[i].PairedSets == nil {
			workouts[i].PairedSets = [][]int{}
		}
	}
	return workouts, nil
}

// ExerciseMap indexes a loaded catalog by exercise id.
func ExerciseMap(exercises []models.Exercise) map[int]models.Exercise {
	m := make(map[int]models.Exercise, len(exercises))
	for _, ex := range exercises {
		m[ex.ID] = ex
	}
	return m
}
