package config

import (
	"path/filepath"
	"testing"
)

func TestNew_Layout(t *testing.T) {
	cfg := New("/srv/show")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"data dir", cfg.DataDir, "/srv/show/data"},
		{"base file", cfg.BaseFile, "/srv/show/data/base.json"},
		{"episodes dir", cfg.EpisodesDir, "/srv/show/data/episodes"},
		{"archive dir", cfg.ArchiveDir, "/srv/show/data/episodes/original"},
		{"category dir", cfg.CategoryDir, "/srv/show/data/takumi"},
		{"dist dir", cfg.DistDir, "/srv/show/dist"},
		{"target file", cfg.TargetFile, "/srv/show/dist/data.json"},
		{"index file", cfg.IndexFile, "/srv/show/dist/data.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != filepath.FromSlash(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, tt.got)
			}
		})
	}
}

func TestCategories_Order(t *testing.T) {
	cats := New("root").Categories()

	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cats))
	}
	if cats[0].Key != "episodes" || !cats[0].Episodes {
		t.Errorf("first category = %+v, want episodes sorted by episode key", cats[0])
	}
	if cats[1].Key != "takumi" || cats[1].Episodes {
		t.Errorf("second category = %+v, want takumi sorted lexicographically", cats[1])
	}
}

func TestValidate(t *testing.T) {
	if err := New(".").Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	if err := New("").Validate(); err == nil {
		t.Error("Validate() should fail for an empty root")
	}

	cfg := New("root")
	cfg.TargetFile = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail for an incomplete layout")
	}
}

func TestRel(t *testing.T) {
	cfg := New("/srv/show")

	if got := cfg.Rel(cfg.TargetFile); got != filepath.Join("dist", "data.json") {
		t.Errorf("Rel() = %q", got)
	}
}
