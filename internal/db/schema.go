package db

import "database/sql"

// SchemaSQL is the complete schema of the episode index.
//
// This is the SINGLE SOURCE OF TRUTH for the index schema. Tests load it via
// GetSchemaSQL() instead of declaring their own tables; keep it in sync with
// the migrations list when adding columns.
const SchemaSQL = `
-- Episodes, one row per fragment file in episode filename order
CREATE TABLE IF NOT EXISTS episodes (
	position INTEGER PRIMARY KEY,
	file TEXT NOT NULL UNIQUE,
	number REAL,
	title TEXT,
	name TEXT,
	name_zh TEXT,
	aired TEXT,
	budget REAL,
	prefecture TEXT,
	body TEXT NOT NULL,
	indexed_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_episodes_number ON episodes(number);
CREATE INDEX IF NOT EXISTS idx_episodes_aired ON episodes(aired);
`

// InitSchema creates the schema on a fresh database and runs pending
// migrations on an existing one.
func InitSchema(database *sql.DB) error {
	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(database)
	}

	// Fresh install - create the modern schema directly and mark every
	// migration as applied
	if _, err := database.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(database); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
