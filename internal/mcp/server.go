package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("FitPlan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("FitPlan workout planning server. Query the exercise catalog, workout definitions, recorded training performance, and per-exercise progression; record new training results."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolListWorkouts, Handler: h.listWorkouts},
		server.ServerTool{Tool: toolGetWorkout, Handler: h.getWorkout},
		server.ServerTool{Tool: toolGetPerformance, Handler: h.getPerformance},
		server.ServerTool{Tool: toolGetProgression, Handler: h.getProgression},
		server.ServerTool{Tool: toolRecordPerformance, Handler: h.recordPerformance},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCatalog, Handler: h.catalog},
		server.ServerResource{Resource: resRecentPerformance, Handler: h.recentPerformance},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resCatalog = mcp.NewResource(
	"fitplan://catalog",
	"Training Catalog",
	mcp.WithResourceDescription("All exercises and workout definitions, including paired (superset) declarations"),
	mcp.WithMIMEType("application/json"),
)

var resRecentPerformance = mcp.NewResource(
	"fitplan://recent_performance",
	"Recent Performance",
	mcp.WithResourceDescription("Recorded training performance from the last 14 days"),
	mcp.WithMIMEType("application/json"),
)
