package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Snapshot Export
// The store uses a temp directory for atomic updates

func snapshot(path, payload string) *hscrape.Snapshot {
	return &hscrape.Snapshot{ID: "snap", Kind: hscrape.PageTrending, Path: path, Payload: payload}
}

func TestSnapshotStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewSnapshotStore(base, "export")

	// When I save a snapshot
	err := store.Save(context.Background(), snapshot("/trending/page/2/", `{"items":[]}`))

	// Then no error occurs
	require.NoError(t, err)

	// And the file exists in the temp directory, indented
	got, err := os.ReadFile(filepath.Join(base, "export.tmp", "trending", "trending", "page", "2", "index.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"items\": []\n}\n", string(got))

	// And the final directory does not exist yet
	_, err = os.Stat(filepath.Join(base, "export"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestSnapshotStore_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	// Given a store with an earlier export in place
	base := t.TempDir()
	stale := filepath.Join(base, "export", "stale.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("{}"), 0644))

	store := fs.NewSnapshotStore(base, "export")
	require.NoError(t, store.Save(context.Background(), &hscrape.Snapshot{Kind: hscrape.PageCalendar, Path: "/calendar/", Payload: `{"months":[]}`}))

	// When I commit
	err := store.Commit()

	// Then the new file is in the final directory
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "export", "calendar", "calendar", "index.json"))
	require.NoError(t, err)

	// And the earlier export is gone
	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))

	// And the temp directory is gone
	_, err = os.Stat(filepath.Join(base, "export.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestSnapshotStore_KindsSharingAPathKeepSeparateFiles(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewSnapshotStore(base, "export")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &hscrape.Snapshot{Kind: hscrape.PageGenres, Path: "/series/", Payload: `["genres"]`}))
	require.NoError(t, store.Save(ctx, &hscrape.Snapshot{Kind: hscrape.PageSeriesIndex, Path: "/series/", Payload: `{"items":[]}`}))
	require.NoError(t, store.Commit())

	genres, err := os.ReadFile(filepath.Join(base, "export", "genres", "series", "index.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `["genres"]`, string(genres))
	index, err := os.ReadFile(filepath.Join(base, "export", "series-index", "series", "index.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(index))
}

func TestSnapshotStore_CommitWithNothingSaved(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewSnapshotStore(base, "export")

	require.NoError(t, store.Commit())

	info, err := os.Stat(filepath.Join(base, "export"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSnapshotStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store with saved snapshots
	base := t.TempDir()
	store := fs.NewSnapshotStore(base, "export")
	require.NoError(t, store.Save(context.Background(), snapshot("/", `{}`)))

	// When I abort
	err := store.Abort()

	// Then nothing is left behind
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "export.tmp"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "export"))
	assert.True(t, os.IsNotExist(err))
}

func TestSnapshotStore_SaveRejectsBadSnapshots(t *testing.T) {
	t.Parallel()

	store := fs.NewSnapshotStore(t.TempDir(), "export")

	t.Run("invalid snapshot", func(t *testing.T) {
		t.Parallel()

		err := store.Save(context.Background(), &hscrape.Snapshot{Path: "/"})

		assert.Equal(t, hscrape.EINVALID, hscrape.ErrorCode(err))
	})

	t.Run("payload is not JSON", func(t *testing.T) {
		t.Parallel()

		err := store.Save(context.Background(), snapshot("/broken/", "<html>"))

		assert.Equal(t, hscrape.EINVALID, hscrape.ErrorCode(err))
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := store.Save(ctx, snapshot("/", `{}`))

		assert.ErrorIs(t, err, context.Canceled)
	})
}
