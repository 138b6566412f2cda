package primary

import "context"

// IndexService defines the primary port for the episode index.
type IndexService interface {
	// Index replaces the index contents with the current episode fragments.
	Index(ctx context.Context) (*IndexResponse, error)

	// ListEpisodes returns the indexed episodes in fragment order.
	ListEpisodes(ctx context.Context) ([]*Episode, error)
}

// IndexResponse contains the result of indexing.
type IndexResponse struct {
	Path  string
	Count int
}

// Episode represents an indexed episode at the port boundary.
type Episode struct {
	Position   int
	File       string
	Number     string // empty for specials
	Name       string
	NameZh     string
	Aired      string
	Budget     string // empty when unknown
	Prefecture string
}
