package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hscrape"
)

// Ensure LoggingSnapshotService implements hscrape.SnapshotService.
var _ hscrape.SnapshotService = (*LoggingSnapshotService)(nil)

// LoggingSnapshotService wraps a SnapshotService with debug logging.
// Writes are logged at info, reads at debug.
type LoggingSnapshotService struct {
	next   hscrape.SnapshotService
	logger *slog.Logger
}

// NewLoggingSnapshotService creates a new LoggingSnapshotService.
func NewLoggingSnapshotService(next hscrape.SnapshotService, logger *slog.Logger) *LoggingSnapshotService {
	return &LoggingSnapshotService{next: next, logger: logger}
}

// CreateSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) CreateSnapshot(ctx context.Context, snapshot *hscrape.Snapshot) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("snapshot saved",
			"kind", snapshot.Kind,
			"path", snapshot.Path,
			"id", snapshot.ID,
			"bytes", len(snapshot.Payload),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSnapshot(ctx, snapshot)
}

// FindSnapshotByID delegates to the wrapped service.
func (s *LoggingSnapshotService) FindSnapshotByID(ctx context.Context, id string) (snapshot *hscrape.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("snapshot lookup",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSnapshotByID(ctx, id)
}

// FindSnapshots delegates to the wrapped service and logs the result count.
func (s *LoggingSnapshotService) FindSnapshots(ctx context.Context, filter hscrape.SnapshotFilter) (snapshots []*hscrape.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("snapshot query",
			"count", len(snapshots),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSnapshots(ctx, filter)
}

// DeleteSnapshotsBefore delegates to the wrapped service and logs how many
// snapshots were pruned.
func (s *LoggingSnapshotService) DeleteSnapshotsBefore(ctx context.Context, t time.Time) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("snapshots pruned",
			"before", t.Format(time.RFC3339),
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSnapshotsBefore(ctx, t)
}
