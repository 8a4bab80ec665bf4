package storage

import (
	"context"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the schema version Migrate brings a database to.
const ExpectedSchemaVersion = 1

// schemaStep moves the database from version-1 to version. Steps run in
// order, each in its own transaction together with the user_version bump.
type schemaStep struct {
	version int
	name    string
	stmt    string
}

var schemaSteps = []schemaStep{
	{
		version: 1,
		name:    "create kv document table",
		stmt: `CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME
		)`,
	},
}

// SchemaVersion reports the version stored in PRAGMA user_version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// Migrate applies every step newer than the stored version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	current, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, step := range schemaSteps {
		if step.version <= current {
			continue
		}
		if err := s.applyStep(ctx, step); err != nil {
			return err
		}
		slog.Debug("Applied schema step", "version", step.version, "name", step.name)
	}

	if current, err = s.SchemaVersion(ctx); err != nil {
		return err
	}
	if current != ExpectedSchemaVersion {
		return fmt.Errorf("schema at version %d after migrating, want %d", current, ExpectedSchemaVersion)
	}
	return nil
}

func (s *SQLiteStorage) applyStep(ctx context.Context, step schemaStep) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start schema step %d: %w", step.version, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, step.stmt); err != nil {
		return fmt.Errorf("schema step %d (%s): %w", step.version, step.name, err)
	}
	// PRAGMA does not accept bound parameters.
	if _, err = tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", step.version)); err != nil {
		return fmt.Errorf("failed to record schema version %d: %w", step.version, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema step %d: %w", step.version, err)
	}
	return nil
}
