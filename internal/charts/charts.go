// Package charts renders exercise progression plots.
package charts

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/claude/fitplan/internal/models"
)

// ProgressionPNG renders daily average reps and average weight for one
// exercise as a two-axis time-series chart. A single data point renders
// as markers with a padded axis window; only an empty series is an error.
func ProgressionPNG(w io.Writer, exercise models.Exercise, points []models.ProgressionPoint) error {
	if len(points) == 0 {
		return fmt.Errorf("progression chart for exercise %d: no data points", exercise.ID)
	}

	dates := make([]float64, len(points))
	reps := make([]float64, len(points))
	weights := make([]float64, len(points))
	for i, p := range points {
		dates[i] = chart.TimeToFloat64(p.Date)
		reps[i] = p.AvgReps
		weights[i] = p.AvgWeightKg
	}

	title := exercise.Name
	if title == "" {
		title = fmt.Sprintf("exercise_%d", exercise.ID)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s (id=%d)", title, exercise.ID),
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis: chart.YAxis{
			Name: "avg reps",
		},
		YAxisSecondary: chart.YAxis{
			Name: "avg weight (kg)",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "avg reps",
				XValues: dates,
				YValues: reps,
			},
			chart.ContinuousSeries{
				Name:    "avg weight",
				YAxis:   chart.YAxisSecondary,
				XValues: dates,
				YValues: weights,
			},
		},
	}

	if len(points) == 1 {
		padSinglePoint(&graph, points[0])
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering progression chart for exercise %d: %w", exercise.ID, err)
	}
	return nil
}

// padSinglePoint gives a one-session series non-zero axis spans (one day
// either side, one unit of value padding) and switches both series to
// dot-only markers, since a single point has no line to draw.
func padSinglePoint(graph *chart.Chart, p models.ProgressionPoint) {
	graph.XAxis.Range = &chart.ContinuousRange{
		Min: chart.TimeToFloat64(p.Date.AddDate(0, 0, -1)),
		Max: chart.TimeToFloat64(p.Date.AddDate(0, 0, 1)),
	}
	graph.YAxis.Range = &chart.ContinuousRange{Min: p.AvgReps - 1, Max: p.AvgReps + 1}
	graph.YAxisSecondary.Range = &chart.ContinuousRange{Min: p.AvgWeightKg - 1, Max: p.AvgWeightKg + 1}

	dotOnly := chart.Style{StrokeWidth: chart.Disabled, DotWidth: 5}
	for i, s := range graph.Series {
		if cs, ok := s.(chart.ContinuousSeries); ok {
			cs.Style = dotOnly
			graph.Series[i] = cs
		}
	}
}
