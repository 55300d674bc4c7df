package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/fitplan/internal/catalog"
	"github.com/claude/fitplan/internal/config"
	"github.com/claude/fitplan/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	exercisesPath := flag.String("exercises", "", "path to exercises YAML file (required)")
	workoutsPath := flag.String("workouts", "", "path to workouts YAML file (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without writing to the database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exercisesPath == "" || *workoutsPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: fitplan-import -config config.yaml -exercises exercises.yaml -workouts workouts.yaml [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	exercises, err := catalog.LoadExercises(*exercisesPath)
	if err != nil {
		log.Error("failed to load exercises", "path", *exercisesPath, "error", err)
		os.Exit(1)
	}
	workouts, err := catalog.LoadWorkouts(*workoutsPath)
	if err != nil {
		log.Error("failed to load workouts", "path", *workoutsPath, "error", err)
		os.Exit(1)
	}
	log.Info("catalog loaded", "exercises", len(exercises), "workouts", len(workouts))

	// Referenced exercise ids missing from the catalog render as
	// placeholders on sheets. Worth a warning at import time.
	known := make(map[int]bool, len(exercises))
	for _, e := range exercises {
		known[e.ID] = true
	}
	for _, w := range workouts {
		for _, id := range w.Exercises {
			if !known[id] {
				log.Warn("workout references unknown exercise", "workout_id", w.ID, "exercise_id", id)
			}
		}
	}

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
		return
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	// Run migrations
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	// Connect database
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	exCount, err := db.UpsertExercises(ctx, exercises)
	if err != nil {
		log.Error("exercise upsert failed", "error", err)
		os.Exit(1)
	}
	woCount, err := db.UpsertWorkouts(ctx, workouts)
	if err != nil {
		log.Error("workout upsert failed", "error", err)
		os.Exit(1)
	}

	log.Info("import stats",
		"exercises_upserted", exCount,
		"workouts_upserted", woCount,
	)
	log.Info("import complete")
}
