package scrape_test

import (
	"context"
	"testing"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/mock"
	"github.com/fwojciec/hscrape/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage(t *testing.T) {
	t.Parallel()

	var calls []string
	s := &mock.Scraper{
		ReleaseFn: func(_ context.Context, year string, page int) (*hscrape.Listing, error) {
			calls = append(calls, "release "+year)
			return &hscrape.Listing{Pagination: hscrape.NewPagination(page, 3)}, nil
		},
		SearchFn: func(_ context.Context, q string, page int) (*hscrape.SearchPage, error) {
			calls = append(calls, "search "+q)
			return &hscrape.SearchPage{Query: q, Pagination: hscrape.NewPagination(page, 1)}, nil
		},
		SeriesFn: func(_ context.Context, slug string) (*hscrape.SeriesDetail, error) {
			calls = append(calls, "series "+slug)
			return &hscrape.SeriesDetail{Slug: slug}, nil
		},
		DownloadFn: func(_ context.Context, slug string) (*hscrape.Download, error) {
			calls = append(calls, "download "+slug)
			return nil, hscrape.Errorf(hscrape.EUNAVAILABLE, "HTTP 503")
		},
	}
	ctx := context.Background()

	rec, p, err := scrape.Page(ctx, s, hscrape.PageRelease, "2024", 2)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 2, p.CurrentPage)
	assert.IsType(t, &hscrape.Listing{}, rec)

	rec, p, err = scrape.Page(ctx, s, hscrape.PageSearch, "tsuki", 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "tsuki", rec.(*hscrape.SearchPage).Query)

	rec, p, err = scrape.Page(ctx, s, hscrape.PageSeries, "tsuki-id-01", 1)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, "tsuki-id-01", rec.(*hscrape.SeriesDetail).Slug)

	_, _, err = scrape.Page(ctx, s, hscrape.PageDownload, "ep-1", 1)
	assert.Equal(t, hscrape.EUNAVAILABLE, hscrape.ErrorCode(err))

	_, _, err = scrape.Page(ctx, s, hscrape.PageKind("bogus"), "", 1)
	assert.Equal(t, hscrape.EINVALID, hscrape.ErrorCode(err))

	assert.Equal(t, []string{"release 2024", "search tsuki", "series tsuki-id-01", "download ep-1"}, calls)
}
