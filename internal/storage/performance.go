package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/claude/fitplan/internal/models"
	"github.com/google/uuid"
)

// InsertPerformance batch-inserts recorded performance rows. Rows without
// an ID are assigned one. Returns the count inserted.
func (db *DB) InsertPerformance(ctx context.Context, rows []models.PerformanceRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `INSERT INTO performance (id, workout_id, exercise_id, performed_on, reps, weights_kg) VALUES `
	args := make([]any, 0, len(rows)*6)
	valueStrings := make([]string, 0, len(rows))

	for i, r := range rows {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		base := i * 6
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
		))
		args = append(args, r.ID, r.WorkoutID, r.ExerciseID, r.PerformedOn, r.Reps, r.WeightsKg)
	}

	query += strings.Join(valueStrings, ",") + " ON CONFLICT DO NOTHING"

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting performance: %w", err)
	}
	return tag.RowsAffected(), nil
}

// QueryPerformance retrieves performance rows in a date range, newest day
// first. A workoutID of 0 means all workouts.
func (db *DB) QueryPerformance(ctx context.Context, workoutID int, start, end time.Time) ([]models.PerformanceRow, error) {
	query := `SELECT id, workout_id, exercise_id, performed_on, reps, weights_kg, created_at
	          FROM performance
	          WHERE performed_on >= $1 AND performed_on < $2`
	args := []any{start, end}
	if workoutID != 0 {
		query += ` AND workout_id = $3`
		args = append(args, workoutID)
	}
	query += ` ORDER BY performed_on DESC, exercise_id`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying performance: %w", err)
	}
	defer rows.Close()

	var result []models.PerformanceRow
	for rows.Next() {
		var r models.PerformanceRow
		if err := rows.Scan(&r.ID, &r.WorkoutID, &r.ExerciseID, &r.PerformedOn, &r.Reps, &r.WeightsKg, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning performance: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
