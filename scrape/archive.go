package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/hscrape"
	"golang.org/x/sync/errgroup"
)

// Archiver records scraped pages as snapshots, fetching the pages of a
// paginated list concurrently.
type Archiver struct {
	Scraper     hscrape.Scraper
	Snapshots   hscrape.SnapshotService
	Concurrency int
	// MaxPages caps how many pages a single run archives.
	MaxPages int
}

// Result holds the outcome of an archive run.
type Result struct {
	Saved     int
	Unchanged int
	Failed    int
	Bytes     int
}

// ProgressEvent reports progress during an archive run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting archive progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of scraping a single page.
type pageResult struct {
	page    int
	path    string
	payload string
	err     error
}

// scraped is what one page of a kind yields: its record and, for
// paginated kinds, the page's pagination.
type scraped struct {
	record     any
	pagination *hscrape.Pagination
}

// Archive scrapes pages of kind and records each one as a snapshot. arg is
// the slug, year or query the kind needs. When pages is zero or less, every
// page the first page reports is archived, up to MaxPages. A page whose
// payload matches the newest snapshot of its path is counted as unchanged
// and not recorded again.
func (a *Archiver) Archive(ctx context.Context, kind hscrape.PageKind, arg string, pages int, progress ProgressFunc) (*Result, error) {
	first, err := a.scrape(ctx, kind, arg, 1)
	if err != nil {
		return nil, err
	}

	total := 1
	if first.pagination != nil {
		total = pages
		if total <= 0 {
			total = first.pagination.TotalPages
		}
	}
	maxPages := a.MaxPages
	if maxPages <= 0 {
		maxPages = 50
	}
	total = max(min(total, maxPages), 1)

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan pageResult, total)
	resultCh <- a.encode(kind, arg, 1, first, nil)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for page := 2; page <= total; page++ {
			g.Go(func() error {
				s, err := a.scrape(gctx, kind, arg, page)
				resultCh <- a.encode(kind, arg, page, s, err)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in page order.
	var completed atomic.Int64
	results := make([]pageResult, total)
	var result Result
	for r := range resultCh {
		completed.Add(1)
		results[r.page-1] = r

		if progress == nil {
			continue
		}
		ev := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Path:      r.path,
		}
		if r.err != nil {
			ev.Type, ev.Error = ProgressFailed, r.err
		}
		progress(ev)
	}

	for _, r := range results {
		if r.err != nil {
			result.Failed++
			continue
		}
		unchanged, err := a.record(ctx, kind, r)
		if err != nil {
			result.Failed++
			continue
		}
		if unchanged {
			result.Unchanged++
			continue
		}
		result.Saved++
		result.Bytes += len(r.payload)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, nil
}

// record stores r unless the newest snapshot of its kind and path has the
// same payload, reporting whether it was unchanged. Several kinds share a
// site path, so the path alone does not identify a page.
func (a *Archiver) record(ctx context.Context, kind hscrape.PageKind, r pageResult) (bool, error) {
	hash := ComputeHash(r.payload)
	latest, err := a.Snapshots.FindSnapshots(ctx, hscrape.SnapshotFilter{Kind: &kind, Path: &r.path, Limit: 1})
	if err != nil {
		return false, err
	}
	if len(latest) > 0 && latest[0].ContentHash == hash {
		return true, nil
	}
	return false, a.Snapshots.CreateSnapshot(ctx, &hscrape.Snapshot{
		Kind:        kind,
		Path:        r.path,
		Payload:     r.payload,
		ContentHash: hash,
	})
}

func (a *Archiver) encode(kind hscrape.PageKind, arg string, page int, s scraped, err error) pageResult {
	r := pageResult{page: page, path: Path(kind, arg, page), err: err}
	if err != nil {
		return r
	}
	b, err := json.Marshal(s.record)
	if err != nil {
		r.err = fmt.Errorf("encode %s: %w", r.path, err)
		return r
	}
	r.payload = string(b)
	return r
}

// scrape fetches one page of kind through the Scraper.
func (a *Archiver) scrape(ctx context.Context, kind hscrape.PageKind, arg string, page int) (scraped, error) {
	rec, p, err := Page(ctx, a.Scraper, kind, arg, page)
	if err != nil {
		return scraped{}, err
	}
	return scraped{record: rec, pagination: p}, nil
}

// ComputeHash returns the xxhash of content as 16 hex digits.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
