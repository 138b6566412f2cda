package app

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/example/epidata/internal/config"
	"github.com/example/epidata/internal/ports/secondary"
)

// Ensure mockFragmentStore implements the interface
var _ secondary.FragmentStore = (*mockFragmentStore)(nil)

// mockFragmentStore implements secondary.FragmentStore in memory for testing.
type mockFragmentStore struct {
	files    map[string][]byte
	dirs     map[string]bool
	writeErr error
	writes   []string
	renames  [][2]string
}

func newMockFragmentStore() *mockFragmentStore {
	return &mockFragmentStore{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (m *mockFragmentStore) ListJSON(ctx context.Context, dir string) ([]string, error) {
	if !m.dirs[dir] {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrNotExist}
	}
	var names []string
	for path := range m.files {
		if filepath.Dir(path) == dir && strings.HasSuffix(path, ".json") {
			names = append(names, filepath.Base(path))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *mockFragmentStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *mockFragmentStore) WriteFile(ctx context.Context, path string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.dirs[filepath.Dir(path)] = true
	m.files[path] = append([]byte(nil), data...)
	m.writes = append(m.writes, path)
	return nil
}

func (m *mockFragmentStore) Exists(ctx context.Context, path string) (bool, error) {
	_, isFile := m.files[path]
	return isFile || m.dirs[path], nil
}

func (m *mockFragmentStore) Rename(ctx context.Context, oldPath, newPath string) error {
	data, ok := m.files[oldPath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if !m.dirs[filepath.Dir(newPath)] {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrNotExist}
	}
	delete(m.files, oldPath)
	m.files[newPath] = data
	m.renames = append(m.renames, [2]string{oldPath, newPath})
	return nil
}

func (m *mockFragmentStore) CreateDirectory(ctx context.Context, path string) error {
	m.dirs[path] = true
	return nil
}

// seed adds a file and marks its directory as existing.
func (m *mockFragmentStore) seed(path, content string) {
	m.dirs[filepath.Dir(path)] = true
	m.files[path] = []byte(content)
}

// Ensure recordingReporter implements the interface
var _ secondary.Reporter = (*recordingReporter)(nil)

// recordingReporter implements secondary.Reporter by recording every line.
type recordingReporter struct {
	infos     []string
	successes []string
	warnings  []string
	blocks    []string
}

func (r *recordingReporter) Infof(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Successf(format string, args ...any) {
	r.successes = append(r.successes, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Block(text string) {
	r.blocks = append(r.blocks, text)
}

// newTestLayout returns a config rooted at /show with empty episode and
// category directories and an empty base document.
func newTestLayout(t *testing.T) (*config.Config, *mockFragmentStore) {
	t.Helper()

	cfg := config.New("/show")
	store := newMockFragmentStore()
	store.seed(cfg.BaseFile, `{}`)
	store.dirs[cfg.EpisodesDir] = true
	store.dirs[cfg.CategoryDir] = true
	return cfg, store
}

func episodePath(cfg *config.Config, name string) string {
	return filepath.Join(cfg.EpisodesDir, name)
}
