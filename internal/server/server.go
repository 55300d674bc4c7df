package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/fitplan/internal/sheet"
	"github.com/claude/fitplan/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db       *storage.DB
	log      *slog.Logger
	apiKey   string
	geometry sheet.Geometry
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:       db,
		log:      log,
		apiKey:   apiKey,
		geometry: sheet.A4Geometry(),
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Catalog and artifacts (read-only, no auth — tsnet handles access)
	s.router.Get("/api/v1/exercises", s.handleListExercises)
	s.router.Get("/api/v1/exercises/{id}/progression", s.handleProgression)
	s.router.Get("/api/v1/exercises/{id}/progression/chart", s.handleProgressionChart)
	s.router.Get("/api/v1/workouts", s.handleListWorkouts)
	s.router.Get("/api/v1/workouts/{id}", s.handleGetWorkout)
	s.router.Get("/api/v1/workouts/{id}/sheet", s.handleWorkoutSheet)
	s.router.Get("/api/v1/performance", s.handleQueryPerformance)

	// Write endpoints (API key required)
	s.router.Route("/api/v1/record", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handleRecordPerformance)
	})
}
