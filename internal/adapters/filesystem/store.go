// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/example/epidata/internal/ports/secondary"
)

// FragmentStore implements secondary.FragmentStore on the local filesystem.
type FragmentStore struct{}

// NewFragmentStore creates a new filesystem fragment store.
func NewFragmentStore() *FragmentStore {
	return &FragmentStore{}
}

// ListJSON lists the ".json" files of dir, sorted by name.
func (s *FragmentStore) ListJSON(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// ReadFile returns the contents of path.
func (s *FragmentStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile replaces path atomically: the data goes to a temporary file in
// the same directory which is then renamed over path.
func (s *FragmentStore) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	existed, err := s.Exists(ctx, path)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	// atomic keeps the mode of a replaced file but creates new ones 0600.
	if !existed {
		if err := os.Chmod(path, 0644); err != nil {
			return fmt.Errorf("failed to set mode: %w", err)
		}
	}
	return nil
}

// Exists checks if anything exists at path.
func (s *FragmentStore) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	return true, nil
}

// Rename moves oldPath to newPath.
func (s *FragmentStore) Rename(ctx context.Context, oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// CreateDirectory creates a directory with all parent directories.
func (s *FragmentStore) CreateDirectory(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// Ensure FragmentStore implements the interface
var _ secondary.FragmentStore = (*FragmentStore)(nil)
