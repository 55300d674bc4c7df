package mcp

import (
	"context"
	"time"

	"github.com/claude/fitplan/internal/models"
	"github.com/claude/fitplan/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	GetWorkout(ctx context.Context, id int) (*models.Workout, error)
	QueryPerformance(ctx context.Context, workoutID int, start, end time.Time) ([]models.PerformanceRow, error)
	GetProgression(ctx context.Context, exerciseID int, start, end time.Time) ([]models.ProgressionPoint, error)
	InsertPerformance(ctx context.Context, rows []models.PerformanceRow) (int64, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
