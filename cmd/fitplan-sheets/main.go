package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/claude/fitplan/internal/config"
	"github.com/claude/fitplan/internal/models"
	"github.com/claude/fitplan/internal/sheet"
	"github.com/claude/fitplan/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	outDir := flag.String("out", "sheets", "output directory for PDF files")
	workoutID := flag.Int("workout-id", 0, "render only this workout (0 = all)")
	force := flag.Bool("force", false, "re-render even if the workout is unchanged")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("fitplan-sheets", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

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
	exercises, err := db.ExerciseMap(ctx)
	if err != nil {
		log.Error("failed to load exercises", "error", err)
		os.Exit(1)
	}

	// Open render state database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	state, err := sheet.OpenRenderState(filepath.Join(homeDir, ".fitplan-sheets"))
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Error("failed to create output directory", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	var rendered, skipped, failed int
	for _, w := range workouts {
		if *workoutID != 0 && w.ID != *workoutID {
			continue
		}

		hash := sheet.HashWorkout(w, exercises)
		if !*force {
			current, err := state.IsCurrent(w.ID, hash)
			if err != nil {
				log.Error("state check failed", "workout_id", w.ID, "error", err)
				failed++
				continue
			}
			if current {
				log.Info("sheet up to date", "workout_id", w.ID, "name", w.Name)
				skipped++
				continue
			}
		}

		path := filepath.Join(*outDir, sheetFilename(w))
		if err := renderSheet(path, w, exercises); err != nil {
			log.Error("render failed", "workout_id", w.ID, "error", err)
			failed++
			continue
		}
		if err := state.MarkRendered(w.ID, hash); err != nil {
			log.Error("state update failed", "workout_id", w.ID, "error", err)
		}
		log.Info("sheet rendered", "workout_id", w.ID, "name", w.Name, "path", path)
		rendered++
	}

	log.Info("done", "rendered", rendered, "skipped", skipped, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func sheetFilename(w models.Workout) string {
	return fmt.Sprintf("workout_%d_%s.pdf", w.ID, sheet.Sanitize(w.Name))
}

func renderSheet(path string, w models.Workout, exercises map[int]models.Exercise) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := sheet.RenderPDF(f, w, exercises, sheet.A4Geometry()); err != nil {
		_ = f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
