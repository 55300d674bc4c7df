package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/claude/fitplan/internal/config"
	"github.com/claude/fitplan/internal/models"
	"github.com/claude/fitplan/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := storage.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	workouts, err := db.ListWorkouts(ctx)
	if err != nil {
		log.Error("failed to list workouts", "error", err)
		os.Exit(1)
	}
	if len(workouts) == 0 {
		fmt.Println("No workouts defined. Import a catalog first with fitplan-import.")
		os.Exit(1)
	}
	exercises, err := db.ExerciseMap(ctx)
	if err != nil {
		log.Error("failed to load exercises", "error", err)
		os.Exit(1)
	}

	in := bufio.NewScanner(os.Stdin)

	workout, err := pickWorkout(in, workouts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	performedOn, err := pickDate(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rows := collectRows(in, *workout, exercises, performedOn)
	if len(rows) == 0 {
		fmt.Println("Nothing recorded.")
		return
	}

	inserted, err := db.InsertPerformance(ctx, rows)
	if err != nil {
		log.Error("insert failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Recorded %d exercise(s) for %s on %s.\n",
		inserted, workout.DisplayName(), performedOn.Format("2006-01-02"))
}

func pickWorkout(in *bufio.Scanner, workouts []models.Workout) (*models.Workout, error) {
	fmt.Println("Workouts:")
	for _, w := range workouts {
		fmt.Printf("  %d: %s\n", w.ID, w.DisplayName())
	}
	fmt.Print("Workout id: ")
	if !in.Scan() {
		return nil, fmt.Errorf("no input")
	}
	id, err := strconv.Atoi(strings.TrimSpace(in.Text()))
	if err != nil {
		return nil, fmt.Errorf("invalid workout id: %w", err)
	}
	for i := range workouts {
		if workouts[i].ID == id {
			return &workouts[i], nil
		}
	}
	return nil, fmt.Errorf("no workout with id %d", id)
}

func pickDate(in *bufio.Scanner) (time.Time, error) {
	today := time.Now().Truncate(24 * time.Hour)
	fmt.Printf("Date [%s]: ", today.Format("2006-01-02"))
	if !in.Scan() {
		return time.Time{}, fmt.Errorf("no input")
	}
	text := strings.TrimSpace(in.Text())
	if text == "" {
		return today, nil
	}
	t, err := time.Parse("2006-01-02", text)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %w", err)
	}
	return t, nil
}

// collectRows prompts for reps and weights per workout exercise. An empty
// reps line skips the exercise.
func collectRows(in *bufio.Scanner, w models.Workout, exercises map[int]models.Exercise, performedOn time.Time) []models.PerformanceRow {
	var rows []models.PerformanceRow
	for _, id := range w.Exercises {
		name := fmt.Sprintf("Exercise #%d", id)
		if ex, ok := exercises[id]; ok {
			name = ex.Name
		}
		fmt.Printf("\n%s\n", name)

		reps, ok := promptInts(in, "  reps (comma-separated, blank to skip): ")
		if !ok || len(reps) == 0 {
			fmt.Println("  skipped")
			continue
		}
		weights, ok := promptFloats(in, "  weights kg (one value for all sets): ")
		if !ok {
			fmt.Println("  skipped")
			continue
		}

		rows = append(rows, models.PerformanceRow{
			ID:          uuid.New(),
			WorkoutID:   w.ID,
			ExerciseID:  id,
			PerformedOn: performedOn,
			Reps:        reps,
			WeightsKg:   models.NormalizeWeights(reps, weights),
		})
	}
	return rows
}

func promptInts(in *bufio.Scanner, prompt string) ([]int32, bool) {
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			return nil, false
		}
		text := strings.TrimSpace(in.Text())
		if text == "" {
			return nil, true
		}
		vals := make([]int32, 0, 4)
		bad := false
		for _, p := range strings.Split(text, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				fmt.Println("  please enter numbers, e.g. 8,8,7")
				bad = true
				break
			}
			vals = append(vals, int32(n))
		}
		if !bad {
			return vals, true
		}
	}
}

func promptFloats(in *bufio.Scanner, prompt string) ([]float64, bool) {
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			return nil, false
		}
		text := strings.TrimSpace(in.Text())
		if text == "" {
			return nil, true
		}
		vals := make([]float64, 0, 4)
		bad := false
		for _, p := range strings.Split(text, ",") {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				fmt.Println("  please enter numbers, e.g. 62.5")
				bad = true
				break
			}
			vals = append(vals, f)
		}
		if !bad {
			return vals, true
		}
	}
}
