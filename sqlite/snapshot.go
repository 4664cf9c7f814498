package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/hscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ hscrape.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements hscrape.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB

	// Now returns the time recorded on snapshots that carry none.
	Now func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db, Now: time.Now}
}

// hashContent computes xxHash of content and returns it as 16 hex digits.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// CreateSnapshot records a new snapshot. The ID is always generated; the
// hash and scrape time are filled in when the caller left them empty.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *hscrape.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	snapshot.ID = uuid.New().String()
	if snapshot.ScrapedAt.IsZero() {
		snapshot.ScrapedAt = s.Now()
	}
	snapshot.ScrapedAt = snapshot.ScrapedAt.UTC()
	if snapshot.ContentHash == "" {
		snapshot.ContentHash = hashContent(snapshot.Payload)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, kind, path, payload, content_hash, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snapshot.ID, string(snapshot.Kind), snapshot.Path, snapshot.Payload, snapshot.ContentHash,
		formatTime(snapshot.ScrapedAt))

	return err
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*hscrape.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, path, payload, content_hash, scraped_at
		FROM snapshots
		WHERE id = ?
	`, id)

	snapshot, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, hscrape.Errorf(hscrape.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter hscrape.SnapshotFilter) ([]*hscrape.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, kind, path, payload, content_hash, scraped_at FROM snapshots WHERE 1=1")

	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	// rowid breaks ties between snapshots taken within the same instant.
	query.WriteString(" ORDER BY scraped_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*hscrape.Snapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, rows.Err()
}

// DeleteSnapshotsBefore removes snapshots scraped before t.
func (s *SnapshotService) DeleteSnapshotsBefore(ctx context.Context, t time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE scraped_at < ?", formatTime(t))
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*hscrape.Snapshot, error) {
	var snapshot hscrape.Snapshot
	var kind, scrapedAt string

	if err := row.Scan(&snapshot.ID, &kind, &snapshot.Path, &snapshot.Payload,
		&snapshot.ContentHash, &scrapedAt); err != nil {
		return nil, err
	}
	snapshot.Kind = hscrape.PageKind(kind)

	var err error
	snapshot.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
