package hscrape

import (
	"context"
	"time"
)

// Snapshot is one archived scrape result: the JSON payload of a page as it
// was extracted at ScrapedAt.
type Snapshot struct {
	ID          string    `json:"id"`
	Kind        PageKind  `json:"kind"`
	Path        string    `json:"path"`
	Payload     string    `json:"payload"`
	ContentHash string    `json:"contentHash"`
	ScrapedAt   time.Time `json:"scrapedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Kind == "" {
		return Errorf(EINVALID, "snapshot kind required")
	}
	if s.Path == "" {
		return Errorf(EINVALID, "snapshot path required")
	}
	if s.Payload == "" {
		return Errorf(EINVALID, "snapshot payload required")
	}
	return nil
}

// SnapshotService represents a service for recording scrape history.
type SnapshotService interface {
	// CreateSnapshot records a new snapshot, assigning its ID, hash and time.
	CreateSnapshot(ctx context.Context, snapshot *Snapshot) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if the snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshotsBefore removes snapshots scraped before t and reports
	// how many were removed.
	DeleteSnapshotsBefore(ctx context.Context, t time.Time) (int, error)
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	Kind        *PageKind `json:"kind"`
	Path        *string   `json:"path"`
	ContentHash *string   `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
