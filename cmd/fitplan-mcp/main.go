package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/claude/fitplan/internal/config"
	"github.com/claude/fitplan/internal/mcp"
	"github.com/claude/fitplan/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	remote := flag.String("remote", "", "FitPlan server URL for remote mode (e.g. https://fitplan.tail1234.ts.net)")
	apiKey := flag.String("api-key", "", "API key for remote write operations (remote mode only)")
	flag.Parse()

	// stdout carries the MCP protocol, logs go to stderr
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource

	if *remote != "" {
		ds = mcp.NewHTTPClient(*remote, *apiKey)
		log.Info("MCP server starting", "mode", "remote", "server", *remote, "version", Version)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		ds = db
		log.Info("MCP server starting", "mode", "local", "version", Version)
	}

	srv := mcp.New(ds, Version, log)

	if err := mcpserver.ServeStdio(srv); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
