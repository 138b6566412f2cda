// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/epidata/internal/db"
	"github.com/example/epidata/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every pooled connection to ":memory:" is a separate database.
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// newRecord builds an episode record for seeding.
func newRecord(position int, file string, number float64, name string) *secondary.EpisodeRecord {
	return &secondary.EpisodeRecord{
		Position: position,
		File:     file,
		Number:   &number,
		Name:     name,
		Body:     `{"number":` + file[:len(file)-len(".json")] + `}`,
	}
}
