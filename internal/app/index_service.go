package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/example/epidata/internal/config"
	"github.com/example/epidata/internal/core/fragment"
	"github.com/example/epidata/internal/ports/primary"
	"github.com/example/epidata/internal/ports/secondary"
)

// IndexServiceImpl implements the IndexService interface.
type IndexServiceImpl struct {
	cfg       *config.Config
	store     secondary.FragmentStore
	indexRepo secondary.IndexRepository
	reporter  secondary.Reporter
}

// NewIndexService creates a new IndexService with injected dependencies.
func NewIndexService(cfg *config.Config, store secondary.FragmentStore, indexRepo secondary.IndexRepository, reporter secondary.Reporter) *IndexServiceImpl {
	return &IndexServiceImpl{
		cfg:       cfg,
		store:     store,
		indexRepo: indexRepo,
		reporter:  reporter,
	}
}

// Index reads every episode fragment in filename order and replaces the
// index contents with them. The reported count is read back from the index.
func (s *IndexServiceImpl) Index(ctx context.Context) (*primary.IndexResponse, error) {
	names, err := s.store.ListJSON(ctx, s.cfg.EpisodesDir)
	if err != nil {
		return nil, &fragment.IOError{Op: "list", Path: s.cfg.EpisodesDir, Err: err}
	}
	fragment.SortEpisodeFiles(names)

	records := make([]*secondary.EpisodeRecord, 0, len(names))
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(s.cfg.EpisodesDir, name)
		data, err := s.store.ReadFile(ctx, path)
		if err != nil {
			return nil, &fragment.IOError{Op: "read", Path: path, Err: err}
		}
		episode, err := fragment.DecodeObject(data)
		if err != nil {
			return nil, &fragment.ParseError{Path: path, Err: err}
		}
		rec, err := s.episodeToRecord(i, name, episode)
		if err != nil {
			return nil, fmt.Errorf("failed to index %s: %w", name, err)
		}
		records = append(records, rec)
	}

	if err := s.indexRepo.ReplaceAll(ctx, records); err != nil {
		return nil, err
	}
	count, err := s.indexRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	s.reporter.Successf("Indexed %d episodes into %s", count, s.cfg.Rel(s.cfg.IndexFile))

	return &primary.IndexResponse{Path: s.cfg.IndexFile, Count: count}, nil
}

// ListEpisodes returns the indexed episodes in fragment order.
func (s *IndexServiceImpl) ListEpisodes(ctx context.Context) ([]*primary.Episode, error) {
	records, err := s.indexRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	episodes := make([]*primary.Episode, len(records))
	for i, r := range records {
		episodes[i] = s.recordToEpisode(r)
	}
	return episodes, nil
}

func (s *IndexServiceImpl) episodeToRecord(position int, file string, episode *fragment.Object) (*secondary.EpisodeRecord, error) {
	compact, err := episode.MarshalJSON()
	if err != nil {
		return nil, err
	}
	body, err := fragment.Normalize(compact)
	if err != nil {
		return nil, err
	}

	rec := &secondary.EpisodeRecord{
		Position:   position,
		File:       file,
		Title:      stringField(episode, "title"),
		Name:       stringField(episode, "name"),
		NameZh:     stringField(episode, "name:zh"),
		Aired:      stringField(episode, "aired"),
		Prefecture: stringField(episode, "prefecture"),
		Body:       string(body),
	}
	if f := fragment.FieldOf(episode, "number"); f.IsNumber() {
		n := f.Num
		rec.Number = &n
	}
	if f := fragment.FieldOf(episode, "budget"); f.IsNumber() {
		b := f.Num
		rec.Budget = &b
	}
	return rec, nil
}

func (s *IndexServiceImpl) recordToEpisode(r *secondary.EpisodeRecord) *primary.Episode {
	ep := &primary.Episode{
		Position:   r.Position,
		File:       r.File,
		Name:       r.Name,
		NameZh:     r.NameZh,
		Aired:      r.Aired,
		Prefecture: r.Prefecture,
	}
	// Unmigrated fragments still carry the composite title.
	if ep.Name == "" {
		ep.Name = r.Title
	}
	if r.Number != nil {
		ep.Number = fragment.FormatNumber(*r.Number)
	}
	if r.Budget != nil {
		ep.Budget = fragment.FormatNumber(*r.Budget)
	}
	return ep
}

func stringField(o *fragment.Object, key string) string {
	if f := fragment.FieldOf(o, key); f.IsString() {
		return f.Str
	}
	return ""
}

// Ensure IndexServiceImpl implements the interface
var _ primary.IndexService = (*IndexServiceImpl)(nil)
