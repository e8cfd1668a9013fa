package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/openbounty/bounty-api/internal/config"
	"github.com/openbounty/bounty-api/internal/db"
	"github.com/openbounty/bounty-api/internal/repo"
	"github.com/openbounty/bounty-api/internal/scheduler"
)

func main() {

	// Load configuration
	cfg := config.Load()

	setupLogger(cfg.LogFormat)

	if cfg.Env == "prod" && cfg.JWTSecret == config.DefaultJWTSecret {
		slog.Error("refusing to start: JWT_SECRET must be set in prod")
		os.Exit(1)
	}

	// Connect to database FIRST
	database, err := db.Connect(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBUser,
		cfg.DBPass,
	)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	database.SetMaxOpenConns(cfg.DBMaxOpenConns)
	database.SetMaxIdleConns(cfg.DBMaxIdleConns)

	slog.Info("connected to the database", "host", cfg.DBHost, "name", cfg.DBName)

	// Apply migrations
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err := db.Run(dbURL); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	// Background refresh of the open-issue gauges
	scheduler.Run(repo.NewIssueRepo(database))

	r := newRouter(database, cfg)

	// Start server LAST
	addr := ":" + cfg.Port
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		slog.Info("starting server with TLS", "addr", addr)
		err = http.ListenAndServeTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile, r)
	} else {
		slog.Info("starting server", "addr", addr)
		err = http.ListenAndServe(addr, r)
	}
	if err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// setupLogger installs the default slog handler: text for dev, json when
// LOG_FORMAT=json.
func setupLogger(format string) {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}
