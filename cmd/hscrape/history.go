package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/fs"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Show != "" {
		s, err := deps.Snapshots.FindSnapshotByID(deps.Ctx, c.Show)
		if err != nil {
			return fail(deps, err)
		}
		fmt.Fprintln(deps.Stdout, s.Payload)
		return nil
	}

	if c.Prune > 0 {
		n, err := deps.Snapshots.DeleteSnapshotsBefore(deps.Ctx, time.Now().Add(-c.Prune))
		if err != nil {
			return fail(deps, err)
		}
		fmt.Fprintf(deps.Stdout, "Deleted %d snapshots\n", n)
		return nil
	}

	filter := hscrape.SnapshotFilter{Limit: c.Limit}
	if c.Export != "" {
		// Every path needs its newest snapshot, wherever it falls in the history.
		filter.Limit = 0
	}
	if c.Kind != "" {
		kind := hscrape.PageKind(c.Kind)
		filter.Kind = &kind
	}
	if c.Path != "" {
		filter.Path = &c.Path
	}

	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		return fail(deps, err)
	}

	if len(snapshots) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'hscrape archive' to record some.")
		return nil
	}

	if c.Export != "" {
		return c.export(deps, snapshots)
	}

	for _, s := range snapshots {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n",
			s.ID, s.ScrapedAt.Format(time.RFC3339), s.Kind, s.Path, s.ContentHash)
	}
	return nil
}

// export writes the newest snapshot of each kind and path. snapshots arrive
// newest first, so the first one seen for a kind and path wins.
func (c *HistoryCmd) export(deps *Dependencies, snapshots []*hscrape.Snapshot) error {
	dir := filepath.Clean(c.Export)
	store := fs.NewSnapshotStore(filepath.Dir(dir), filepath.Base(dir))

	type key struct {
		kind hscrape.PageKind
		path string
	}
	seen := make(map[key]bool)
	for _, s := range snapshots {
		k := key{s.Kind, s.Path}
		if seen[k] {
			continue
		}
		seen[k] = true
		if err := store.Save(deps.Ctx, s); err != nil {
			_ = store.Abort()
			return fail(deps, err)
		}
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", len(seen), dir)
	return nil
}
