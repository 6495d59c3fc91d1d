package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()

	action := flag.String("action", "up", "migration action: up, down or status")
	steps := flag.Int("steps", 1, "number of migrations to roll back with -action=down")
	path := flag.String("path", "", "migrations directory (defaults to MIGRATIONS_PATH)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(*action, *steps, *path); err != nil {
		logger.Error("Migration failed", "action", *action, "error", err)
		os.Exit(1)
	}
}

func run(action string, steps int, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("SQL migrations require the postgres driver, got %q", cfg.Database.Driver)
	}
	if path == "" {
		path = cfg.Database.MigrationsPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db, path)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}

	switch action {
	case "up":
		return runner.Up()
	case "down":
		if err := runner.Down(steps); err != nil {
			return err
		}
		slog.Info("Migrations rolled back", "steps", steps)
		return nil
	case "status":
		version, dirty, err := runner.Status()
		if err != nil {
			return err
		}
		slog.Info("Migration status", "version", version, "dirty", dirty)
		return nil
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}
