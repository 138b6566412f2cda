// Package primary defines the primary ports (driving adapters) for the application.
package primary

import (
	"context"

	"github.com/example/epidata/internal/core/fragment"
)

// FragmentService defines the primary port for fragment repository operations.
type FragmentService interface {
	// Build merges the base document and every fragment into the aggregate.
	Build(ctx context.Context) (*BuildResponse, error)

	// Split writes the aggregate's episodes back out as fragment files.
	Split(ctx context.Context) (*SplitResponse, error)

	// Scan audits episode fragments. It never modifies files.
	Scan(ctx context.Context) (*ScanResponse, error)

	// Migrate splits composite titles, archiving each original file.
	Migrate(ctx context.Context) (*MigrateResponse, error)
}

// BuildResponse contains the result of a build.
type BuildResponse struct {
	Target string
	Counts map[string]int // fragments merged per category key
	Bytes  int
}

// SplitResponse contains the result of a split.
type SplitResponse struct {
	Written []string // filenames without extension, in write order
	Skipped int      // elements without a numeric number
}

// ScanResponse contains the result of a scan.
type ScanResponse struct {
	Files    int
	Findings []fragment.Finding
}

// MigrateResponse contains the result of a migration run.
type MigrateResponse struct {
	Fixed     []string
	Archived  int // files skipped because an archived copy exists
	Unmatched int
}
