package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/claude/fitplan/internal/models"
)

// UpsertExercises inserts or replaces catalog exercises. Returns the number
// of rows written.
func (db *DB) UpsertExercises(ctx context.Context, exercises []models.Exercise) (int64, error) {
	if len(exercises) == 0 {
		return 0, nil
	}

	query := `INSERT INTO exercises (id, name, sets, reps_min, reps_max, comment, rest_sec) VALUES `
	args := make([]any, 0, len(exercises)*7)
	valueStrings := make([]string, 0, len(exercises))

	for i, ex := range exercises {
		base := i * 7
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
		))
		var repsMin, repsMax *int
		if !ex.Reps.IsZero() {
			repsMin, repsMax = &ex.Reps.Min, &ex.Reps.Max
		}
		args = append(args, ex.ID, ex.Name, ex.Sets, repsMin, repsMax, ex.Comment, ex.RestSec)
	}

	query += strings.Join(valueStrings, ",") +
		` ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name, sets = EXCLUDED.sets,
		   reps_min = EXCLUDED.reps_min, reps_max = EXCLUDED.reps_max,
		   comment = EXCLUDED.comment, rest_sec = EXCLUDED.rest_sec`

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("upserting exercises: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListExercises retrieves the full exercise catalog ordered by id.
func (db *DB) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, sets, reps_min, reps_max, comment, rest_sec
		 FROM exercises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		var repsMin, repsMax *int
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.Sets, &repsMin, &repsMax, &ex.Comment, &ex.RestSec); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		if repsMin != nil && repsMax != nil {
			ex.Reps = models.RepRange{Min: *repsMin, Max: *repsMax}
		}
		result = append(result, ex)
	}
	return result, rows.Err()
}

// ExerciseMap retrieves the catalog indexed by exercise id.
func (db *DB) ExerciseMap(ctx context.Context) (map[int]models.Exercise, error) {
	exercises, err := db.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[int]models.Exercise, len(exercises))
	for _, ex := range exercises {
		m[ex.ID] = ex
	}
	return m, nil
}
