package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/hscrape"
	main "github.com/fwojciec/hscrape/cmd/hscrape"
	"github.com/fwojciec/hscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists snapshots with filter", func(t *testing.T) {
		t.Parallel()

		var got hscrape.SnapshotFilter
		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, filter hscrape.SnapshotFilter) ([]*hscrape.Snapshot, error) {
				got = filter
				return []*hscrape.Snapshot{{
					ID:          "snap-1",
					Kind:        hscrape.PageCalendar,
					Path:        "/calendar/",
					ContentHash: "00000000deadbeef",
					ScrapedAt:   time.Date(2025, 12, 10, 12, 0, 0, 0, time.UTC),
				}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Snapshots: snapshots}

		err := (&main.HistoryCmd{Kind: "calendar", Limit: 5}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "snap-1  2025-12-10T12:00:00Z  calendar  /calendar/  00000000deadbeef\n", stdout.String())
		require.NotNil(t, got.Kind)
		assert.Equal(t, hscrape.PageCalendar, *got.Kind)
		assert.Nil(t, got.Path)
		assert.Equal(t, 5, got.Limit)
	})

	t.Run("shows a payload", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotByIDFn: func(_ context.Context, id string) (*hscrape.Snapshot, error) {
				return &hscrape.Snapshot{ID: id, Payload: `{"months":[]}`}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Snapshots: snapshots}

		err := (&main.HistoryCmd{Show: "snap-1"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "{\"months\":[]}\n", stdout.String())
	})

	t.Run("reports missing snapshot", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotByIDFn: func(context.Context, string) (*hscrape.Snapshot, error) {
				return nil, hscrape.Errorf(hscrape.ENOTFOUND, "snapshot not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Snapshots: snapshots}

		err := (&main.HistoryCmd{Show: "nope"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: snapshot not found\n", stderr.String())
	})

	t.Run("prunes by age", func(t *testing.T) {
		t.Parallel()

		var cutoff time.Time
		snapshots := &mock.SnapshotService{
			DeleteSnapshotsBeforeFn: func(_ context.Context, t time.Time) (int, error) {
				cutoff = t
				return 3, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Snapshots: snapshots}

		before := time.Now()
		err := (&main.HistoryCmd{Prune: 24 * time.Hour}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Deleted 3 snapshots\n", stdout.String())
		assert.WithinDuration(t, before.Add(-24*time.Hour), cutoff, time.Minute)
	})

	t.Run("exports newest snapshot per kind and path", func(t *testing.T) {
		t.Parallel()

		var got hscrape.SnapshotFilter
		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, filter hscrape.SnapshotFilter) ([]*hscrape.Snapshot, error) {
				got = filter
				return []*hscrape.Snapshot{
					{ID: "new", Kind: hscrape.PageTrending, Path: "/trending/", Payload: `{"v":2}`},
					{ID: "genres", Kind: hscrape.PageGenres, Path: "/series/", Payload: `["g"]`},
					{ID: "index", Kind: hscrape.PageSeriesIndex, Path: "/series/", Payload: `{"items":[]}`},
					{ID: "old", Kind: hscrape.PageTrending, Path: "/trending/", Payload: `{"v":1}`},
				}, nil
			},
		}

		dir := filepath.Join(t.TempDir(), "export")
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Snapshots: snapshots}

		err := (&main.HistoryCmd{Limit: 20, Export: dir}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 0, got.Limit, "export must see the whole history")
		assert.Equal(t, "Exported 3 pages to "+dir+"\n", stdout.String())
		trending, err := os.ReadFile(filepath.Join(dir, "trending", "trending", "index.json"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"v":2}`, string(trending))
		genres, err := os.ReadFile(filepath.Join(dir, "genres", "series", "index.json"))
		require.NoError(t, err)
		assert.JSONEq(t, `["g"]`, string(genres))
		index, err := os.ReadFile(filepath.Join(dir, "series-index", "series", "index.json"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"items":[]}`, string(index))
	})

	t.Run("export leaves no temp directory on failure", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(context.Context, hscrape.SnapshotFilter) ([]*hscrape.Snapshot, error) {
				return []*hscrape.Snapshot{
					{ID: "ok", Kind: hscrape.PageHome, Path: "/", Payload: `{}`},
					{ID: "bad", Kind: hscrape.PageHome, Path: "/broken/", Payload: `not json`},
				}, nil
			},
		}

		base := t.TempDir()
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Snapshots: snapshots}

		err := (&main.HistoryCmd{Export: filepath.Join(base, "export")}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: snapshot bad payload is not JSON\n", stderr.String())
		entries, err := os.ReadDir(base)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
