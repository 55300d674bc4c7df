package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/claude/fitplan/internal/charts"
	"github.com/claude/fitplan/internal/models"
	"github.com/claude/fitplan/internal/sheet"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.db.ListExercises(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := s.db.ListWorkouts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	workout, err := s.db.GetWorkout(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

// handleWorkoutSheet renders the fill-in PDF for one workout. The sheet is
// built into a buffer first so layout errors surface as JSON, not as a
// truncated download.
func (s *Server) handleWorkoutSheet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	workout, err := s.db.GetWorkout(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	exercises, err := s.db.ExerciseMap(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := sheet.RenderPDF(&buf, *workout, exercises, s.geometry); err != nil {
		s.log.Error("sheet render error", "workout_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("workout_%d_%s.pdf", workout.ID, sheet.Sanitize(workout.DisplayName()))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(buf.Bytes())
}

func (s *Server) handleProgression(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise ID"})
		return
	}

	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	points, err := s.db.GetProgression(r.Context(), id, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleProgressionChart(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise ID"})
		return
	}

	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	exercises, err := s.db.ExerciseMap(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	exercise, ok := exercises[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}

	points, err := s.db.GetProgression(r.Context(), id, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := charts.ProgressionPNG(&buf, exercise, points); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *Server) handleQueryPerformance(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	workoutID := 0
	if v := r.URL.Query().Get("workout_id"); v != "" {
		workoutID, err = strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout_id"})
			return
		}
	}

	rows, err := s.db.QueryPerformance(r.Context(), workoutID, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// recordRequest is the payload for POST /api/v1/record.
type recordRequest struct {
	WorkoutID   int            `json:"workout_id"`
	PerformedOn string         `json:"performed_on"`
	Results     []recordResult `json:"results"`
}

type recordResult struct {
	ExerciseID int       `json:"exercise_id"`
	Reps       []int32   `json:"reps"`
	WeightsKg  []float64 `json:"weights_kg"`
}

func (s *Server) handleRecordPerformance(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	rows, err := performanceRows(req, time.Now())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	inserted, err := s.db.InsertPerformance(r.Context(), rows)
	if err != nil {
		s.log.Error("record error", "workout_id", req.WorkoutID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"inserted": inserted})
}

// performanceRows converts a record request into insertable rows, applying
// the weight normalization rules and defaulting the date to today.
func performanceRows(req recordRequest, now time.Time) ([]models.PerformanceRow, error) {
	if req.WorkoutID == 0 {
		return nil, fmt.Errorf("workout_id is required")
	}
	if len(req.Results) == 0 {
		return nil, fmt.Errorf("results must not be empty")
	}

	performedOn := now.Truncate(24 * time.Hour)
	if req.PerformedOn != "" {
		var err error
		performedOn, err = time.Parse("2006-01-02", req.PerformedOn)
		if err != nil {
			return nil, fmt.Errorf("invalid performed_on date %q", req.PerformedOn)
		}
	}

	rows := make([]models.PerformanceRow, 0, len(req.Results))
	for _, res := range req.Results {
		reps := res.Reps
		if reps == nil {
			reps = []int32{}
		}
		rows = append(rows, models.PerformanceRow{
			ID:          uuid.New(),
			WorkoutID:   req.WorkoutID,
			ExerciseID:  res.ExerciseID,
			PerformedOn: performedOn,
			Reps:        reps,
			WeightsKg:   models.NormalizeWeights(reps, res.WeightsKg),
		})
	}
	return rows, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}

	if startStr == "" {
		// Default: 90 days before the (possibly explicit) end
		start = end.AddDate(0, 0, -90)
		return
	}
	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return
}
