package models

import (
	"time"

	"github.com/google/uuid"
)

// PerformanceRow is one exercise's recorded result for a training session,
// ready for insertion into the performance table. Reps and WeightsKg are
// parallel per-set slices; an empty Reps slice means the exercise was
// skipped ("finished earlier").
type PerformanceRow struct {
	ID          uuid.UUID `json:"id"`
	WorkoutID   int       `json:"workout_id"`
	ExerciseID  int       `json:"exercise_id"`
	PerformedOn time.Time `json:"performed_on"`
	Reps        []int32   `json:"reps"`
	WeightsKg   []float64 `json:"weights_kg"`
	CreatedAt   time.Time `json:"created_at"`
}

// NormalizeWeights reconciles a recorded weights list with the reps list:
// a single weight replicates across all sets, extra weights are trimmed,
// and missing ones pad with zero. No reps means no weights.
func NormalizeWeights(reps []int32, weights []float64) []float64 {
	if len(reps) == 0 {
		return []float64{}
	}
	if len(weights) == 1 && len(reps) > 1 {
		out := make([]float64, len(reps))
		for i := range out {
			out[i] = weights[0]
		}
		return out
	}
	if len(weights) > len(reps) {
		return weights[:len(reps)]
	}
	for len(weights) < len(reps) {
		weights = append(weights, 0)
	}
	return weights
}

// ProgressionPoint is one day's averaged performance for an exercise.
type ProgressionPoint struct {
	Date        time.Time `json:"date"`
	AvgReps     float64   `json:"avg_reps"`
	AvgWeightKg float64   `json:"avg_weight_kg"`
}
