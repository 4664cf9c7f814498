package mock

import (
	"context"

	"github.com/fwojciec/hscrape"
)

var _ hscrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of hscrape.Scraper.
type Scraper struct {
	HomeFn        func(ctx context.Context) (*hscrape.Home, error)
	TrendingFn    func(ctx context.Context, page int) (*hscrape.Listing, error)
	GenreFn       func(ctx context.Context, slug string, page int) (*hscrape.Listing, error)
	UncensoredFn  func(ctx context.Context, page int) (*hscrape.Listing, error)
	ReleaseFn     func(ctx context.Context, year string, page int) (*hscrape.Listing, error)
	SeriesIndexFn func(ctx context.Context, page int) (*hscrape.Listing, error)
	VideosFn      func(ctx context.Context, page int) (*hscrape.EpisodeListing, error)
	SearchFn      func(ctx context.Context, query string, page int) (*hscrape.SearchPage, error)
	GenresFn      func(ctx context.Context) ([]hscrape.GenreSummary, error)
	CalendarFn    func(ctx context.Context) (*hscrape.Calendar, error)
	SeriesFn      func(ctx context.Context, slug string) (*hscrape.SeriesDetail, error)
	WatchFn       func(ctx context.Context, slug string) (*hscrape.Watch, error)
	DownloadFn    func(ctx context.Context, slug string) (*hscrape.Download, error)
	ChromeFn      func(ctx context.Context) (*hscrape.SiteChrome, error)
}

func (s *Scraper) Home(ctx context.Context) (*hscrape.Home, error) {
	return s.HomeFn(ctx)
}

func (s *Scraper) Trending(ctx context.Context, page int) (*hscrape.Listing, error) {
	return s.TrendingFn(ctx, page)
}

func (s *Scraper) Genre(ctx context.Context, slug string, page int) (*hscrape.Listing, error) {
	return s.GenreFn(ctx, slug, page)
}

func (s *Scraper) Uncensored(ctx context.Context, page int) (*hscrape.Listing, error) {
	return s.UncensoredFn(ctx, page)
}

func (s *Scraper) Release(ctx context.Context, year string, page int) (*hscrape.Listing, error) {
	return s.ReleaseFn(ctx, year, page)
}

func (s *Scraper) SeriesIndex(ctx context.Context, page int) (*hscrape.Listing, error) {
	return s.SeriesIndexFn(ctx, page)
}

func (s *Scraper) Videos(ctx context.Context, page int) (*hscrape.EpisodeListing, error) {
	return s.VideosFn(ctx, page)
}

func (s *Scraper) Search(ctx context.Context, query string, page int) (*hscrape.SearchPage, error) {
	return s.SearchFn(ctx, query, page)
}

func (s *Scraper) Genres(ctx context.Context) ([]hscrape.GenreSummary, error) {
	return s.GenresFn(ctx)
}

func (s *Scraper) Calendar(ctx context.Context) (*hscrape.Calendar, error) {
	return s.CalendarFn(ctx)
}

func (s *Scraper) Series(ctx context.Context, slug string) (*hscrape.SeriesDetail, error) {
	return s.SeriesFn(ctx, slug)
}

func (s *Scraper) Watch(ctx context.Context, slug string) (*hscrape.Watch, error) {
	return s.WatchFn(ctx, slug)
}

func (s *Scraper) Download(ctx context.Context, slug string) (*hscrape.Download, error) {
	return s.DownloadFn(ctx, slug)
}

func (s *Scraper) Chrome(ctx context.Context) (*hscrape.SiteChrome, error) {
	return s.ChromeFn(ctx)
}
