// Package db opens the SQLite episode index and keeps its schema current.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if needed) the index database at path and brings its
// schema up to date.
func Open(path string) (*sql.DB, error) {
	// Ensure the parent directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}

	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}
