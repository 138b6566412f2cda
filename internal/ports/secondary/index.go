package secondary

import "context"

// IndexRepository defines the secondary port for the episode index.
type IndexRepository interface {
	// ReplaceAll swaps the entire index for records in one transaction.
	ReplaceAll(ctx context.Context, records []*EpisodeRecord) error

	// List returns every record ordered by position.
	List(ctx context.Context) ([]*EpisodeRecord, error)

	// Count returns the number of indexed records.
	Count(ctx context.Context) (int, error)
}

// EpisodeRecord represents an episode as stored in the index.
type EpisodeRecord struct {
	Position   int
	File       string
	Number     *float64
	Title      string
	Name       string
	NameZh     string
	Aired      string
	Budget     *float64
	Prefecture string
	Body       string // compact JSON of the fragment
}
