package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/epidata/internal/adapters/sqlite"
	"github.com/example/epidata/internal/ports/secondary"
)

func TestEpisodeIndexRepository_ReplaceAllAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewEpisodeIndexRepository(db)
	ctx := context.Background()

	budget := 1500000.0
	first := newRecord(0, "1.json", 1, "Akina")
	first.NameZh = "秋名"
	first.Aired = "1998-04-18"
	first.Budget = &budget
	first.Prefecture = "Gunma"

	records := []*secondary.EpisodeRecord{
		first,
		newRecord(1, "2.json", 2, "Myogi"),
		{Position: 2, File: "abc.json", Title: "Special", Body: `{"title":"Special"}`},
	}

	if err := repo.ReplaceAll(ctx, records); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}

	if got[0].File != "1.json" || got[0].NameZh != "秋名" || got[0].Prefecture != "Gunma" {
		t.Errorf("unexpected first record: %+v", got[0])
	}
	if got[0].Budget == nil || *got[0].Budget != budget {
		t.Errorf("expected budget %v, got %v", budget, got[0].Budget)
	}
	if got[1].Budget != nil {
		t.Errorf("expected nil budget, got %v", *got[1].Budget)
	}
	if got[2].Number != nil {
		t.Errorf("expected special to have no number, got %v", *got[2].Number)
	}
	if got[2].Title != "Special" {
		t.Errorf("expected title Special, got %q", got[2].Title)
	}
}

func TestEpisodeIndexRepository_ReplaceAllDropsOldRows(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewEpisodeIndexRepository(db)
	ctx := context.Background()

	err := repo.ReplaceAll(ctx, []*secondary.EpisodeRecord{
		newRecord(0, "1.json", 1, "a"),
		newRecord(1, "2.json", 2, "b"),
	})
	if err != nil {
		t.Fatalf("first ReplaceAll failed: %v", err)
	}

	if err := repo.ReplaceAll(ctx, []*secondary.EpisodeRecord{newRecord(0, "3.json", 3, "c")}); err != nil {
		t.Fatalf("second ReplaceAll failed: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 record, got %d", count)
	}
}

func TestEpisodeIndexRepository_ReplaceAllRollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewEpisodeIndexRepository(db)
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, []*secondary.EpisodeRecord{newRecord(0, "1.json", 1, "a")}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// Duplicate file names violate the UNIQUE constraint.
	err := repo.ReplaceAll(ctx, []*secondary.EpisodeRecord{
		newRecord(0, "2.json", 2, "b"),
		newRecord(1, "2.json", 2, "b"),
	})
	if err == nil {
		t.Fatal("expected error for duplicate file")
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].File != "1.json" {
		t.Errorf("expected previous index to survive, got %d records", len(got))
	}
}
