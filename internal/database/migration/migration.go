// Package migration creates the archive schema on first start.
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

// sentinelRelation is created by the last step. Its presence means every step ran,
// so a run that failed halfway is retried in full on the next start.
const sentinelRelation = "public.idx_storage_locations_drawer"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_units",
		SQL: `CREATE TABLE IF NOT EXISTS units (
  id   BIGSERIAL PRIMARY KEY,
  name TEXT      NOT NULL UNIQUE
);`,
	},
	{
		Name: "create_table_storage_locations",
		SQL: `CREATE TABLE IF NOT EXISTS storage_locations (
  id             BIGSERIAL PRIMARY KEY,
  unit_id        BIGINT    NOT NULL REFERENCES units (id),
  cabinet_prefix TEXT      NOT NULL,
  no_laci        TEXT      NOT NULL,
  no_folder      TEXT      NOT NULL,
  UNIQUE (unit_id, cabinet_prefix, no_laci, no_folder)
);`,
	},
	{
		Name: "create_table_archive_records",
		SQL: `CREATE TABLE IF NOT EXISTS archive_records (
  id                  UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  unit_id             BIGINT      NOT NULL REFERENCES units (id),
  classification_code TEXT        NOT NULL,
  title               TEXT        NOT NULL,
  description         TEXT        NOT NULL DEFAULT '',
  file_number         INTEGER     NOT NULL CHECK (file_number > 0),
  location_id         BIGINT      REFERENCES storage_locations (id),
  created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_inactive_transfers",
		SQL: `CREATE TABLE IF NOT EXISTS inactive_transfers (
  id                BIGSERIAL   PRIMARY KEY,
  archive_record_id UUID        NOT NULL UNIQUE REFERENCES archive_records (id) ON DELETE CASCADE,
  note              TEXT        NOT NULL DEFAULT '',
  moved_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_archive_records_unit_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_archive_records_unit_id ON archive_records (unit_id);`,
	},
	{
		Name: "create_index_archive_records_location_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_archive_records_location_id ON archive_records (location_id);`,
	},
	{
		Name: "create_index_archive_records_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_archive_records_created_at ON archive_records (created_at);`,
	},
	{
		Name: "create_index_storage_locations_drawer",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_storage_locations_drawer ON storage_locations (unit_id, no_laci);`,
	},
}

// EnsureMigrated runs the migration steps unless the relation created by the last step already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := fmt.Sprintf("SELECT to_regclass('%s') IS NOT NULL", sentinelRelation)
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists"),
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
