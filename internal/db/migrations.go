package db

import (
	"database/sql"
	"fmt"
)

// Migration is one versioned schema change.
type Migration struct {
	Version int
	Name    string
	Up      func(tx *sql.Tx) error
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_episodes",
		Up:      migrationV1,
	},
}

// CurrentVersion returns the highest known migration version.
func CurrentVersion() int {
	return migrations[len(migrations)-1].Version
}

// RunMigrations executes all pending migrations, each in its own transaction.
func RunMigrations(database *sql.DB) error {
	if err := createVersionTable(database); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := database.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

func createVersionTable(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// migrationV1 creates the episodes table.
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(SchemaSQL)
	return err
}
