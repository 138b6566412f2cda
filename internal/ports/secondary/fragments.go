// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// FragmentStore defines the secondary port for fragment file access.
type FragmentStore interface {
	// ListJSON returns the names of regular files ending in ".json" in dir,
	// in directory order. Subdirectories are not descended into.
	ListJSON(ctx context.Context, dir string) ([]string, error)

	// ReadFile returns the contents of path.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile replaces path with data atomically, creating parent
	// directories as needed.
	WriteFile(ctx context.Context, path string, data []byte) error

	// Exists reports whether anything exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// Rename moves oldPath to newPath.
	Rename(ctx context.Context, oldPath, newPath string) error

	// CreateDirectory creates a directory with all parent directories.
	CreateDirectory(ctx context.Context, path string) error
}

// Reporter defines the secondary port for advisory console output.
// Nothing reported through it is an error.
type Reporter interface {
	Infof(format string, args ...any)
	Successf(format string, args ...any)
	Warnf(format string, args ...any)
	// Block writes a multi-line block verbatim.
	Block(text string)
}
