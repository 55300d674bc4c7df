package mcp

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/fitplan/internal/models"
)

// defaultTimeRange returns start/end defaulting to the last 90 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -90)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the exercise catalog: name, target sets, target rep range (e.g. '8-12' or '8+' for to-failure), comment, and rest seconds."),
)

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List all workout definitions with their ordered exercise id lists and paired-set (superset) declarations."),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Get a single workout definition by id, including exercise order and paired sets."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Workout id")),
)

var toolGetPerformance = mcp.NewTool("get_performance",
	mcp.WithDescription("Query recorded training performance. Each row has per-set reps and weights for one exercise on one date."),
	mcp.WithNumber("workout_id", mcp.Description("Filter by workout id. 0 or absent = all workouts.")),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 90 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

var toolGetProgression = mcp.NewTool("get_progression",
	mcp.WithDescription("Daily average reps and average weight for one exercise over a time range, suitable for trend analysis."),
	mcp.WithNumber("exercise_id", mcp.Required(), mcp.Description("Exercise id")),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 90 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

var toolRecordPerformance = mcp.NewTool("record_performance",
	mcp.WithDescription("Record training performance for one exercise of a workout session. A single weight is replicated across all sets."),
	mcp.WithNumber("workout_id", mcp.Required(), mcp.Description("Workout id")),
	mcp.WithNumber("exercise_id", mcp.Required(), mcp.Description("Exercise id")),
	mcp.WithString("date", mcp.Description("Session date (YYYY-MM-DD). Defaults to today.")),
	mcp.WithString("reps", mcp.Required(), mcp.Description("Comma-separated reps per set, e.g. '8,8,7'.")),
	mcp.WithString("weights_kg", mcp.Description("Comma-separated weight per set in kg. A single value replicates across sets; missing values pad with 0.")),
)

// --- Tool handlers ---

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.ListExercises(ctx)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workouts, err := h.ds.ListWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp list_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	workout, err := h.ds.GetWorkout(ctx, id)
	if err != nil {
		h.log.Error("mcp get_workout", "id", id, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workout)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPerformance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	workoutID := req.GetInt("workout_id", 0)

	rows, err := h.ds.QueryPerformance(ctx, workoutID, start, end)
	if err != nil {
		h.log.Error("mcp get_performance", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(rows)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireInt("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	points, err := h.ds.GetProgression(ctx, exerciseID, start, end)
	if err != nil {
		h.log.Error("mcp get_progression", "exercise_id", exerciseID, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(points)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) recordPerformance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workoutID, err := req.RequireInt("workout_id")
	if err != nil {
		return mcp.NewToolResultError("workout_id parameter is required"), nil
	}
	exerciseID, err := req.RequireInt("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	performedOn := time.Now().Truncate(24 * time.Hour)
	if dateStr := req.GetString("date", ""); dateStr != "" {
		performedOn, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
		}
	}

	repsStr, err := req.RequireString("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}
	reps, err := parseReps(repsStr)
	if err != nil {
		return mcp.NewToolResultError("invalid reps: " + err.Error()), nil
	}
	weights, err := parseWeights(req.GetString("weights_kg", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid weights_kg: " + err.Error()), nil
	}

	row := models.PerformanceRow{
		WorkoutID:   workoutID,
		ExerciseID:  exerciseID,
		PerformedOn: performedOn,
		Reps:        reps,
		WeightsKg:   models.NormalizeWeights(reps, weights),
	}

	inserted, err := h.ds.InsertPerformance(ctx, []models.PerformanceRow{row})
	if err != nil {
		h.log.Error("mcp record_performance", "error", err)
		return mcp.NewToolResultError("insert failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]int64{"inserted": inserted})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// parseReps parses a comma-separated rep list. An empty string means
// the exercise was skipped.
func parseReps(s string) ([]int32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	reps := make([]int32, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		reps = append(reps, int32(n))
	}
	return reps, nil
}

func parseWeights(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	weights := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		weights = append(weights, f)
	}
	return weights, nil
}
