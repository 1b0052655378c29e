package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_beers",
		SQL: `CREATE TABLE IF NOT EXISTS beers (
  id          UUID        PRIMARY KEY,
  beer_name   TEXT        NOT NULL CHECK (char_length(beer_name) BETWEEN 3 AND 100),
  beer_style  TEXT        NOT NULL,
  upc         BIGINT      NOT NULL CHECK (upc > 0),
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_beers_upc",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_beers_upc ON beers (upc);`,
	},
	{
		Name: "create_index_beers_beer_style",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_beers_beer_style ON beers (beer_style);`,
	},
}

// EnsureMigrated checks if the 'beers' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *zap.Logger, dbHost string) error {
	start := time.Now()
	log := logger.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.beers') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("detail", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}
