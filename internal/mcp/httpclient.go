package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claude/fitplan/internal/models"
)

// HTTPClient implements DataSource by calling the FitPlan REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
// The API key is only needed for write operations.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("httpclient: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func timeParams(start, end time.Time) url.Values {
	v := url.Values{}
	v.Set("start", start.Format(time.RFC3339))
	v.Set("end", end.Format(time.RFC3339))
	return v
}

func (c *HTTPClient) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	body, err := c.get(ctx, "/api/v1/exercises", nil)
	if err != nil {
		return nil, err
	}

	var exercises []models.Exercise
	if err := json.Unmarshal(body, &exercises); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercises: %w", err)
	}
	return exercises, nil
}

func (c *HTTPClient) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	body, err := c.get(ctx, "/api/v1/workouts", nil)
	if err != nil {
		return nil, err
	}

	var workouts []models.Workout
	if err := json.Unmarshal(body, &workouts); err != nil {
		return nil, fmt.Errorf("httpclient: decode workouts: %w", err)
	}
	return workouts, nil
}

func (c *HTTPClient) GetWorkout(ctx context.Context, id int) (*models.Workout, error) {
	body, err := c.get(ctx, "/api/v1/workouts/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var workout models.Workout
	if err := json.Unmarshal(body, &workout); err != nil {
		return nil, fmt.Errorf("httpclient: decode workout: %w", err)
	}
	return &workout, nil
}

func (c *HTTPClient) QueryPerformance(ctx context.Context, workoutID int, start, end time.Time) ([]models.PerformanceRow, error) {
	params := timeParams(start, end)
	if workoutID != 0 {
		params.Set("workout_id", strconv.Itoa(workoutID))
	}

	body, err := c.get(ctx, "/api/v1/performance", params)
	if err != nil {
		return nil, err
	}

	var rows []models.PerformanceRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("httpclient: decode performance: %w", err)
	}
	return rows, nil
}

func (c *HTTPClient) GetProgression(ctx context.Context, exerciseID int, start, end time.Time) ([]models.ProgressionPoint, error) {
	params := timeParams(start, end)

	body, err := c.get(ctx, "/api/v1/exercises/"+strconv.Itoa(exerciseID)+"/progression", params)
	if err != nil {
		return nil, err
	}

	var points []models.ProgressionPoint
	if err := json.Unmarshal(body, &points); err != nil {
		return nil, fmt.Errorf("httpclient: decode progression: %w", err)
	}
	return points, nil
}

func (c *HTTPClient) InsertPerformance(ctx context.Context, rows []models.PerformanceRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	type result struct {
		ExerciseID int       `json:"exercise_id"`
		Reps       []int32   `json:"reps"`
		WeightsKg  []float64 `json:"weights_kg"`
	}
	payload := struct {
		WorkoutID   int      `json:"workout_id"`
		PerformedOn string   `json:"performed_on"`
		Results     []result `json:"results"`
	}{
		WorkoutID:   rows[0].WorkoutID,
		PerformedOn: rows[0].PerformedOn.Format("2006-01-02"),
	}
	for _, r := range rows {
		payload.Results = append(payload.Results, result{
			ExerciseID: r.ExerciseID,
			Reps:       r.Reps,
			WeightsKg:  r.WeightsKg,
		})
	}

	body, err := c.post(ctx, "/api/v1/record", payload)
	if err != nil {
		return 0, err
	}

	var resp struct {
		Inserted int64 `json:"inserted"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("httpclient: decode record response: %w", err)
	}
	return resp.Inserted, nil
}
