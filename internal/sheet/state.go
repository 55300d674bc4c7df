package sheet

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/claude/fitplan/internal/models"
)

// RenderState tracks which workout sheets have been rendered, keyed by a
// content hash, so the batch renderer can skip unchanged workouts.
type RenderState struct {
	db *sql.DB
}

// OpenRenderState opens (or creates) the SQLite state database at
// dir/state.db.
func OpenRenderState(dir string) (*RenderState, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS rendered_sheets (
		workout_id  INTEGER PRIMARY KEY,
		hash        TEXT NOT NULL,
		rendered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	return &RenderState{db: db}, nil
}

// IsCurrent reports whether the workout was already rendered with the same
// content hash.
func (s *RenderState) IsCurrent(workoutID int, hash string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM rendered_sheets WHERE workout_id = ? AND hash = ?`,
		workoutID, hash,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkRendered records that a workout sheet was rendered with the given hash.
func (s *RenderState) MarkRendered(workoutID int, hash string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO rendered_sheets (workout_id, hash) VALUES (?, ?)`,
		workoutID, hash,
	)
	return err
}

// Close closes the state database.
func (s *RenderState) Close() error {
	return s.db.Close()
}

// HashWorkout computes a stable SHA-256 over a workout definition and the
// catalog entries it references. Exercises are folded in id order so the
// hash does not depend on map iteration.
func HashWorkout(workout models.Workout, exercises map[int]models.Exercise) string {
	referenced := make([]models.Exercise, 0, len(workout.Exercises))
	seen := make(map[int]bool)
	for _, id := range workout.Exercises {
		if ex, ok := exercises[id]; ok && !seen[id] {
			referenced = append(referenced, ex)
			seen[id] = true
		}
	}
	sort.Slice(referenced, func(i, j int) bool { return referenced[i].ID < referenced[j].ID })

	h := sha256.New()
	enc := json.NewEncoder(h)
	enc.Encode(workout)
	enc.Encode(referenced)
	return hex.EncodeToString(h.Sum(nil))
}
