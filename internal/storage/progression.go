package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/fitplan/internal/models"
)

// GetProgression aggregates performance for one exercise into daily
// averages: per-session mean reps and mean weight, then averaged per day.
// Sessions with no recorded sets contribute nothing.
func (db *DB) GetProgression(ctx context.Context, exerciseID int, start, end time.Time) ([]models.ProgressionPoint, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT performed_on,
		        COALESCE(AVG(rep_mean), 0)    AS avg_reps,
		        COALESCE(AVG(weight_mean), 0) AS avg_weight
		 FROM (
		     SELECT performed_on,
		            (SELECT AVG(r) FROM unnest(reps) AS r)       AS rep_mean,
		            (SELECT AVG(w) FROM unnest(weights_kg) AS w) AS weight_mean
		     FROM performance
		     WHERE exercise_id = $1 AND performed_on >= $2 AND performed_on < $3
		 ) session_means
		 WHERE rep_mean IS NOT NULL
		 GROUP BY performed_on
		 ORDER BY performed_on`,
		exerciseID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying progression: %w", err)
	}
	defer rows.Close()

	var result []models.ProgressionPoint
	for rows.Next() {
		var p models.ProgressionPoint
		if err := rows.Scan(&p.Date, &p.AvgReps, &p.AvgWeightKg); err != nil {
			return nil, fmt.Errorf("scanning progression point: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
