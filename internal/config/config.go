package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Fixed directory and file names, relative to the root.
const (
	DataDirName     = "data"
	DistDirName     = "dist"
	BaseFileName    = "base.json"
	EpisodesDirName = "episodes"
	ArchiveDirName  = "original"
	CategoryDirName = "takumi"
	TargetFileName  = "data.json"
	IndexFileName   = "data.db"
)

// Config holds every path the operations work on. It is built once from the
// root directory and passed to each service.
type Config struct {
	Root        string
	DataDir     string // data
	BaseFile    string // data/base.json
	EpisodesDir string // data/episodes
	ArchiveDir  string // data/episodes/original
	CategoryDir string // data/takumi
	DistDir     string // dist
	TargetFile  string // dist/data.json
	IndexFile   string // dist/data.db
}

// New derives the fixed layout under root.
func New(root string) *Config {
	dataDir := filepath.Join(root, DataDirName)
	distDir := filepath.Join(root, DistDirName)
	episodesDir := filepath.Join(dataDir, EpisodesDirName)

	return &Config{
		Root:        root,
		DataDir:     dataDir,
		BaseFile:    filepath.Join(dataDir, BaseFileName),
		EpisodesDir: episodesDir,
		ArchiveDir:  filepath.Join(episodesDir, ArchiveDirName),
		CategoryDir: filepath.Join(dataDir, CategoryDirName),
		DistDir:     distDir,
		TargetFile:  filepath.Join(distDir, TargetFileName),
		IndexFile:   filepath.Join(distDir, IndexFileName),
	}
}

// Category is one fragment directory merged by build.
type Category struct {
	Key      string // key in the aggregate document
	Dir      string
	Episodes bool // sorted by episode filename key instead of lexicographically
}

// Categories returns the fragment directories in build order.
func (c *Config) Categories() []Category {
	return []Category{
		{Key: EpisodesDirName, Dir: c.EpisodesDir, Episodes: true},
		{Key: CategoryDirName, Dir: c.CategoryDir},
	}
}

// Validate checks that the layout is usable.
func (c *Config) Validate() error {
	if c.Root == "" {
		return errors.New("root directory must not be empty")
	}
	if c.TargetFile == "" || c.BaseFile == "" || c.EpisodesDir == "" {
		return fmt.Errorf("incomplete layout under %s", c.Root)
	}
	return nil
}

// Rel returns path relative to the root for display, or path itself when it
// is not under the root.
func (c *Config) Rel(path string) string {
	rel, err := filepath.Rel(c.Root, path)
	if err != nil {
		return path
	}
	return rel
}
