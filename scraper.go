package hscrape

import "context"

// PageKind names one kind of page on the site.
type PageKind string

// PageKind constants.
const (
	PageHome        PageKind = "home"
	PageTrending    PageKind = "trending"
	PageGenre       PageKind = "genre"
	PageUncensored  PageKind = "uncensored"
	PageRelease     PageKind = "release"
	PageSeriesIndex PageKind = "series-index"
	PageVideos      PageKind = "videos"
	PageSearch      PageKind = "search"
	PageGenres      PageKind = "genres"
	PageCalendar    PageKind = "calendar"
	PageSeries      PageKind = "series"
	PageWatch       PageKind = "watch"
	PageDownload    PageKind = "download"
	PageChrome      PageKind = "chrome"
)

// Scraper fetches pages from the site and returns them as typed records.
// Missing content yields empty lists and fields; only fetch failures and
// invalid arguments are reported as errors.
type Scraper interface {
	Home(ctx context.Context) (*Home, error)
	Trending(ctx context.Context, page int) (*Listing, error)
	Genre(ctx context.Context, slug string, page int) (*Listing, error)
	Uncensored(ctx context.Context, page int) (*Listing, error)

	// Release returns the series released in year, which must be four digits.
	// Returns EINVALID otherwise.
	Release(ctx context.Context, year string, page int) (*Listing, error)

	SeriesIndex(ctx context.Context, page int) (*Listing, error)
	Videos(ctx context.Context, page int) (*EpisodeListing, error)

	// Search returns EINVALID for an empty query.
	Search(ctx context.Context, query string, page int) (*SearchPage, error)

	Genres(ctx context.Context) ([]GenreSummary, error)
	Calendar(ctx context.Context) (*Calendar, error)
	Series(ctx context.Context, slug string) (*SeriesDetail, error)

	// Watch fetches the watch page and then its player document. A failed
	// player fetch is not an error; sources fall back to the player URL.
	Watch(ctx context.Context, slug string) (*Watch, error)

	Download(ctx context.Context, slug string) (*Download, error)
	Chrome(ctx context.Context) (*SiteChrome, error)
}
