package storage

import (
	"context"
	"fmt"

	"github.com/claude/fitplan/internal/models"
)

// UpsertWorkouts inserts or replaces workout definitions, including their
// ordered exercise lists and paired-set declarations, in one transaction
// per workout.
func (db *DB) UpsertWorkouts(ctx context.Context, workouts []models.Workout) (int64, error) {
	var written int64
	for _, w := range workouts {
		if err := db.upsertWorkout(ctx, w); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func (db *DB) upsertWorkout(ctx context.Context, w models.Workout) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning workout upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO workouts (id, name, comment) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, comment = EXCLUDED.comment`,
		w.ID, w.Name, w.Comment)
	if err != nil {
		return fmt.Errorf("upserting workout %d: %w", w.ID, err)
	}

	// Exercise order and pairings are replaced wholesale; positions keep
	// declaration order stable.
	if _, err := tx.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_id = $1`, w.ID); err != nil {
		return fmt.Errorf("clearing workout %d exercises: %w", w.ID, err)
	}
	for pos, exID := range w.Exercises {
		_, err := tx.Exec(ctx,
			`INSERT INTO workout_exercises (workout_id, position, exercise_id) VALUES ($1, $2, $3)`,
			w.ID, pos, exID)
		if err != nil {
			return fmt.Errorf("inserting workout %d exercise at %d: %w", w.ID, pos, err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM paired_sets WHERE workout_id = $1`, w.ID); err != nil {
		return fmt.Errorf("clearing workout %d paired sets: %w", w.ID, err)
	}
	for pos, pair := range w.PairedSets {
		if len(pair) < 2 {
			continue // malformed declarations are dropped at the edge, not stored
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO paired_sets (workout_id, position, exercise_a, exercise_b) VALUES ($1, $2, $3, $4)`,
			w.ID, pos, pair[0], pair[1])
		if err != nil {
			return fmt.Errorf("inserting workout %d paired set at %d: %w", w.ID, pos, err)
		}
	}

	return tx.Commit(ctx)
}

// ListWorkouts retrieves all workouts with their exercise lists and paired
// sets, ordered by id.
func (db *DB) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, name, comment FROM workouts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.Name, &w.Comment); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		if err := db.loadWorkoutLists(ctx, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// GetWorkout retrieves a single workout by id.
func (db *DB) GetWorkout(ctx context.Context, id int) (*models.Workout, error) {
	var w models.Workout
	err := db.Pool.QueryRow(ctx,
		`SELECT id, name, comment FROM workouts WHERE id = $1`, id).
		Scan(&w.ID, &w.Name, &w.Comment)
	if err != nil {
		return nil, fmt.Errorf("querying workout %d: %w", id, err)
	}
	if err := db.loadWorkoutLists(ctx, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (db *DB) loadWorkoutLists(ctx context.Context, w *models.Workout) error {
	w.Exercises = []int{}
	w.PairedSets = [][]int{}

	rows, err := db.Pool.Query(ctx,
		`SELECT exercise_id FROM workout_exercises WHERE workout_id = $1 ORDER BY position`, w.ID)
	if err != nil {
		return fmt.Errorf("querying workout %d exercises: %w", w.ID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var exID int
		if err := rows.Scan(&exID); err != nil {
			return fmt.Errorf("scanning workout %d exercise: %w", w.ID, err)
		}
		w.Exercises = append(w.Exercises, exID)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	pairRows, err := db.Pool.Query(ctx,
		`SELECT exercise_a, exercise_b FROM paired_sets WHERE workout_id = $1 ORDER BY position`, w.ID)
	if err != nil {
		return fmt.Errorf("querying workout %d paired sets: %w", w.ID, err)
	}
	defer pairRows.Close()
	for pairRows.Next() {
		var a, b int
		if err := pairRows.Scan(&a, &b); err != nil {
			return fmt.Errorf("scanning workout %d paired set: %w", w.ID, err)
		}
		w.PairedSets = append(w.PairedSets, []int{a, b})
	}
	return pairRows.Err()
}
