package mock

import (
	"context"
	"time"

	"github.com/fwojciec/hscrape"
)

var _ hscrape.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of hscrape.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn        func(ctx context.Context, snapshot *hscrape.Snapshot) error
	FindSnapshotByIDFn      func(ctx context.Context, id string) (*hscrape.Snapshot, error)
	FindSnapshotsFn         func(ctx context.Context, filter hscrape.SnapshotFilter) ([]*hscrape.Snapshot, error)
	DeleteSnapshotsBeforeFn func(ctx context.Context, t time.Time) (int, error)
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *hscrape.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snapshot)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*hscrape.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter hscrape.SnapshotFilter) ([]*hscrape.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshotsBefore(ctx context.Context, t time.Time) (int, error) {
	return s.DeleteSnapshotsBeforeFn(ctx, t)
}
