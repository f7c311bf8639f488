package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/ecoquest/internal/catalog"
	"github.com/alexanderramin/ecoquest/internal/cli"
	"github.com/alexanderramin/ecoquest/internal/config"
	"github.com/alexanderramin/ecoquest/internal/db"
	"github.com/alexanderramin/ecoquest/internal/repository"
	"github.com/alexanderramin/ecoquest/internal/service"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the database at path. When that fails the tracker runs on
// an in-memory store for this process and a warning is logged.
func openStore(path string, logger *slog.Logger) (*sql.DB, error) {
	database, err := db.OpenDB(path)
	if err == nil {
		return database, nil
	}
	logger.Warn("storage unavailable; progress will not be saved this run",
		"path", path, "error", err)

	database, memErr := db.OpenDB(":memory:")
	if memErr != nil {
		return nil, fmt.Errorf("opening database: %w", errors.Join(err, memErr))
	}
	return database, nil
}

func run() error {
	cfg := config.Load()
	if cfg.DBPath == "" {
		return fmt.Errorf("no database path: set ECOQUEST_DB")
	}

	// Storage warnings always reach stderr; use-case events only on request.
	level := slog.LevelWarn
	if cfg.LogUseCases {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.New().String())

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	database, err := openStore(cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	opts := []service.TrackerOption{
		service.WithStreakPolicy(cfg.StreakPolicy),
		service.WithLogger(logger),
	}
	if cfg.LogUseCases {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(logger)))
	}

	tracker, err := service.OpenTracker(context.Background(),
		repository.NewSQLiteProgressRepo(database),
		db.NewSQLiteUnitOfWork(database),
		cat,
		opts...,
	)
	if err != nil {
		return err
	}

	app := &cli.App{
		Tracker:   tracker,
		TrendDays: cfg.TrendDays,
	}

	// Detect interactive terminal for the dashboard and reset prompt.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
