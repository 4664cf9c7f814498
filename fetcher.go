package hscrape

import "context"

// Fetcher retrieves raw markup from the site.
type Fetcher interface {
	// Fetch returns the markup found at path. A path is resolved against
	// the fetcher's origin; absolute URLs are fetched as they are.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, path string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
