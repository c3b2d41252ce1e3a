package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"randstring/internal/config"
	"randstring/internal/lib/logger/sl"
	"randstring/internal/lib/logger/slogcute"

	"github.com/golang-migrate/migrate/v4"

	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	directionUp   = "up"
	directionDown = "down"
)

func main() {
	var (
		direction string
		steps     int
	)

	flag.StringVar(&direction, "direction", directionUp, "Direction to migrate (up or down)")
	flag.IntVar(&steps, "steps", 0, "Number of migrations to apply; 0 applies all")
	cfg := config.MustLoad()

	log := setupLogger()

	log.Info("starting migrator",
		slog.String("env", cfg.Env),
		slog.String("storage_path", cfg.StoragePath),
		slog.String("migrations_path", cfg.Migrations.MigrationsPath),
		slog.String("migration_table", cfg.Migrations.MigrationTable),
		slog.String("direction", direction),
		slog.Int("steps", steps),
	)

	if err := validateArgs(direction, steps); err != nil {
		log.Error("invalid arguments", sl.Err(err))
		os.Exit(1)
	}

	if err := runMigrations(log, cfg, direction, steps); err != nil {
		log.Error("migration failed", sl.Err(err))
		os.Exit(1)
	}

	log.Info("migrations completed successfully")
}

func setupLogger() *slog.Logger {
	opts := slogcute.CuteHandlerOptions{
		SlogOptions: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	return slog.New(opts.NewCuteHandler(os.Stdout))
}

func validateArgs(direction string, steps int) error {
	if direction != directionUp && direction != directionDown {
		return fmt.Errorf("invalid direction '%s', must be 'up' or 'down'", direction)
	}
	if steps < 0 {
		return fmt.Errorf("invalid steps %d, must not be negative", steps)
	}
	return nil
}

func runMigrations(log *slog.Logger, cfg *config.Config, direction string, steps int) error {
	sourceURL := fmt.Sprintf("file://%s", cfg.Migrations.MigrationsPath)
	databaseURL := fmt.Sprintf("sqlite3://%s?x-migrations-table=%s", cfg.StoragePath, cfg.Migrations.MigrationTable)

	log.Info("initializing migrator",
		slog.String("source", sourceURL),
		slog.String("database", databaseURL),
	)

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			log.Error("failed to close migration source", sl.Err(sourceErr))
		}
		if dbErr != nil {
			log.Error("failed to close database", sl.Err(dbErr))
		}
	}()

	switch {
	case steps > 0 && direction == directionDown:
		err = m.Steps(-steps)
	case steps > 0:
		err = m.Steps(steps)
	case direction == directionDown:
		err = m.Down()
	default:
		err = m.Up()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
