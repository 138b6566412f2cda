// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/epidata/internal/ports/secondary"
)

// EpisodeIndexRepository implements secondary.IndexRepository with SQLite.
type EpisodeIndexRepository struct {
	db *sql.DB
}

// NewEpisodeIndexRepository creates a new SQLite episode index repository.
func NewEpisodeIndexRepository(db *sql.DB) *EpisodeIndexRepository {
	return &EpisodeIndexRepository{db: db}
}

// ReplaceAll deletes every indexed episode and inserts records, atomically.
func (r *EpisodeIndexRepository) ReplaceAll(ctx context.Context, records []*secondary.EpisodeRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM episodes"); err != nil {
		return fmt.Errorf("failed to clear episodes: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO episodes (position, file, number, title, name, name_zh, aired, budget, prefecture, body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			rec.Position,
			rec.File,
			nullFloat(rec.Number),
			nullString(rec.Title),
			nullString(rec.Name),
			nullString(rec.NameZh),
			nullString(rec.Aired),
			nullFloat(rec.Budget),
			nullString(rec.Prefecture),
			rec.Body,
		)
		if err != nil {
			return fmt.Errorf("failed to index %s: %w", rec.File, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit index: %w", err)
	}
	return nil
}

// List retrieves every indexed episode ordered by position.
func (r *EpisodeIndexRepository) List(ctx context.Context) ([]*secondary.EpisodeRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT position, file, number, title, name, name_zh, aired, budget, prefecture, body
		FROM episodes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}
	defer rows.Close()

	var records []*secondary.EpisodeRecord
	for rows.Next() {
		var (
			number, budget                         sql.NullFloat64
			title, name, nameZh, aired, prefecture sql.NullString
		)
		rec := &secondary.EpisodeRecord{}
		if err := rows.Scan(&rec.Position, &rec.File, &number, &title, &name, &nameZh, &aired, &budget, &prefecture, &rec.Body); err != nil {
			return nil, fmt.Errorf("failed to scan episode: %w", err)
		}
		if number.Valid {
			rec.Number = &number.Float64
		}
		if budget.Valid {
			rec.Budget = &budget.Float64
		}
		rec.Title = title.String
		rec.Name = name.String
		rec.NameZh = nameZh.String
		rec.Aired = aired.String
		rec.Prefecture = prefecture.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}

	return records, nil
}

// Count returns the number of indexed episodes.
func (r *EpisodeIndexRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM episodes").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count episodes: %w", err)
	}
	return count, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// Ensure EpisodeIndexRepository implements the interface
var _ secondary.IndexRepository = (*EpisodeIndexRepository)(nil)
