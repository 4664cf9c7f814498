package main

import (
	"fmt"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/scrape"
)

// Run executes the archive command.
func (c *ArchiveCmd) Run(deps *Dependencies) error {
	archiver := &scrape.Archiver{
		Scraper:     deps.Scraper,
		Snapshots:   deps.Snapshots,
		Concurrency: c.Concurrency,
		MaxPages:    c.MaxPages,
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Archiving %d pages\n", event.Total)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", scrape.TruncatePath(event.Path, 60), event.Error)
		case scrape.ProgressCompleted, scrape.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := archiver.Archive(deps.Ctx, hscrape.PageKind(c.Kind), c.Arg, c.Pages, progress)
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d pages (%s), %d unchanged, %d failed\n",
		result.Saved, scrape.FormatBytes(result.Bytes), result.Unchanged, result.Failed)
	return nil
}
