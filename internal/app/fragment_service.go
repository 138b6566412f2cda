package app

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/example/epidata/internal/config"
	"github.com/example/epidata/internal/core/fragment"
	"github.com/example/epidata/internal/ports/primary"
	"github.com/example/epidata/internal/ports/secondary"
)

// FragmentServiceImpl implements the FragmentService interface.
type FragmentServiceImpl struct {
	cfg      *config.Config
	store    secondary.FragmentStore
	reporter secondary.Reporter
}

// NewFragmentService creates a new FragmentService with injected dependencies.
func NewFragmentService(cfg *config.Config, store secondary.FragmentStore, reporter secondary.Reporter) *FragmentServiceImpl {
	return &FragmentServiceImpl{
		cfg:      cfg,
		store:    store,
		reporter: reporter,
	}
}

// Build merges base.json and every category directory into the target file.
// All reads complete before the single write. Repeated keys inside a
// fragment collapse to their last value.
func (s *FragmentServiceImpl) Build(ctx context.Context) (*primary.BuildResponse, error) {
	data, err := s.read(ctx, s.cfg.BaseFile)
	if err != nil {
		return nil, err
	}
	total, err := fragment.DecodeObject(data)
	if err != nil {
		return nil, &fragment.ParseError{Path: s.cfg.BaseFile, Err: err}
	}

	counts := make(map[string]int)
	for _, cat := range s.cfg.Categories() {
		names, err := s.list(ctx, cat.Dir, cat.Episodes)
		if err != nil {
			return nil, err
		}

		values := make([]json.RawMessage, 0, len(names))
		for _, name := range names {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			s.reporter.Infof("Read: %s/%s", cat.Key, name)

			path := filepath.Join(cat.Dir, name)
			raw, err := s.read(ctx, path)
			if err != nil {
				return nil, err
			}
			value, err := fragment.Normalize(raw)
			if err != nil {
				return nil, &fragment.ParseError{Path: path, Err: err}
			}
			values = append(values, value)
		}

		total.Set(cat.Key, fragment.Array(values))
		counts[cat.Key] = len(values)
	}

	out, err := total.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode aggregate: %w", err)
	}
	if err := s.store.WriteFile(ctx, s.cfg.TargetFile, out); err != nil {
		return nil, &fragment.IOError{Op: "write", Path: s.cfg.TargetFile, Err: err}
	}
	s.reporter.Successf("Build done.")

	return &primary.BuildResponse{
		Target: s.cfg.TargetFile,
		Counts: counts,
		Bytes:  len(out),
	}, nil
}

// Split writes every numbered episode of the aggregate to its own fragment
// file. Elements without a numeric number are printed instead.
func (s *FragmentServiceImpl) Split(ctx context.Context) (*primary.SplitResponse, error) {
	data, err := s.read(ctx, s.cfg.TargetFile)
	if err != nil {
		return nil, err
	}
	total, err := fragment.DecodeObject(data)
	if err != nil {
		return nil, &fragment.ParseError{Path: s.cfg.TargetFile, Err: err}
	}

	field := fragment.FieldOf(total, config.EpisodesDirName)
	if !field.Present || !field.IsArray() {
		return nil, &fragment.MissingFieldError{Source: s.cfg.TargetFile, Field: config.EpisodesDirName}
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(field.Raw), &items); err != nil {
		return nil, &fragment.ParseError{Path: s.cfg.TargetFile, Err: err}
	}

	resp := &primary.SplitResponse{}
	alloc := fragment.NewAllocator()
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		source := fmt.Sprintf("%s[%d]", config.EpisodesDirName, i)

		normalized, err := fragment.Normalize(item)
		if err != nil {
			return nil, &fragment.ParseError{Path: source, Err: err}
		}
		pretty, err := fragment.Pretty(normalized)
		if err != nil {
			return nil, &fragment.ParseError{Path: source, Err: err}
		}

		episode, err := fragment.DecodeObject(normalized)
		if err != nil || !fragment.FieldOf(episode, "number").IsNumber() {
			s.reporter.Block(string(pretty))
			resp.Skipped++
			continue
		}

		base, number, err := fragment.EpisodeFilename(source, episode)
		if err != nil {
			return nil, err
		}
		name, err := alloc.Allocate(base, number)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(s.cfg.EpisodesDir, name+fragment.Ext)
		if err := s.store.WriteFile(ctx, path, pretty); err != nil {
			return nil, &fragment.IOError{Op: "write", Path: path, Err: err}
		}
		s.reporter.Successf("%s saved.", name)
		resp.Written = append(resp.Written, name)
	}

	return resp, nil
}

// Scan reports episodes missing budget or prefecture. Findings are
// advisory; only unreadable or invalid JSON files abort the scan.
func (s *FragmentServiceImpl) Scan(ctx context.Context) (*primary.ScanResponse, error) {
	names, err := s.list(ctx, s.cfg.EpisodesDir, true)
	if err != nil {
		return nil, err
	}

	resp := &primary.ScanResponse{Files: len(names)}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(s.cfg.EpisodesDir, name)
		data, err := s.read(ctx, path)
		if err != nil {
			return nil, err
		}
		episode, err := fragment.DecodeObject(data)
		if err != nil {
			if !json.Valid(data) {
				return nil, &fragment.ParseError{Path: path, Err: err}
			}
			// Valid JSON that is not an object carries none of the audited fields.
			episode = fragment.NewObject()
		}

		for _, f := range fragment.Audit(name, episode) {
			s.reporter.Warnf("%s %s.", f.File, f.Problem)
			resp.Findings = append(resp.Findings, f)
		}
	}

	return resp, nil
}

// Migrate rewrites "title": "<name>（<name:zh>）" as separate name and
// name:zh fields. The untouched file is moved into the archive directory
// first; files already archived are never processed again.
func (s *FragmentServiceImpl) Migrate(ctx context.Context) (*primary.MigrateResponse, error) {
	names, err := s.list(ctx, s.cfg.EpisodesDir, true)
	if err != nil {
		return nil, err
	}

	resp := &primary.MigrateResponse{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(s.cfg.EpisodesDir, name)
		archived := filepath.Join(s.cfg.ArchiveDir, name)

		exists, err := s.store.Exists(ctx, archived)
		if err != nil {
			return nil, &fragment.IOError{Op: "stat", Path: archived, Err: err}
		}
		if exists {
			resp.Archived++
			continue
		}

		episode, err := s.readObject(ctx, path)
		if err != nil {
			return nil, err
		}
		if fragment.FieldOf(episode, "number").IsZero() {
			continue
		}

		renamed, ok, err := fragment.RenameTitle(episode)
		if err != nil {
			return nil, fmt.Errorf("failed to rename title of %s: %w", name, err)
		}
		if !ok {
			resp.Unmatched++
			continue
		}
		out, err := fragment.PrettyObject(renamed)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", name, err)
		}

		if err := s.store.CreateDirectory(ctx, s.cfg.ArchiveDir); err != nil {
			return nil, &fragment.IOError{Op: "mkdir", Path: s.cfg.ArchiveDir, Err: err}
		}
		if err := s.store.Rename(ctx, path, archived); err != nil {
			return nil, &fragment.IOError{Op: "rename", Path: path, Err: err}
		}
		if err := s.store.WriteFile(ctx, path, out); err != nil {
			return nil, &fragment.IOError{Op: "write", Path: path, Err: err}
		}
		s.reporter.Successf("%s fixed.", name)
		resp.Fixed = append(resp.Fixed, name)
	}

	return resp, nil
}

// list returns the fragment filenames of dir in processing order.
func (s *FragmentServiceImpl) list(ctx context.Context, dir string, episodes bool) ([]string, error) {
	names, err := s.store.ListJSON(ctx, dir)
	if err != nil {
		return nil, &fragment.IOError{Op: "list", Path: dir, Err: err}
	}
	if episodes {
		fragment.SortEpisodeFiles(names)
	} else {
		fragment.SortCategoryFiles(names)
	}
	return names, nil
}

func (s *FragmentServiceImpl) read(ctx context.Context, path string) ([]byte, error) {
	data, err := s.store.ReadFile(ctx, path)
	if err != nil {
		return nil, &fragment.IOError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

func (s *FragmentServiceImpl) readObject(ctx context.Context, path string) (*fragment.Object, error) {
	data, err := s.read(ctx, path)
	if err != nil {
		return nil, err
	}
	obj, err := fragment.DecodeObject(data)
	if err != nil {
		return nil, &fragment.ParseError{Path: path, Err: err}
	}
	return obj, nil
}

// Ensure FragmentServiceImpl implements the interface
var _ primary.FragmentService = (*FragmentServiceImpl)(nil)
