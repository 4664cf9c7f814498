package mock

import (
	"context"

	"github.com/fwojciec/hscrape"
)

var _ hscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of hscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, path string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	return f.FetchFn(ctx, path)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
