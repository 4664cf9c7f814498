// Package scrape fetches pages from the site and assembles them into
// hscrape records. It is the only layer that combines I/O with extraction.
package scrape

import (
	"context"
	"regexp"
	"strings"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/extract"
	"github.com/fwojciec/hscrape/markup"
)

var _ hscrape.Scraper = (*Scraper)(nil)

var fourDigitYear = regexp.MustCompile(`^\d{4}$`)

// Scraper implements hscrape.Scraper on top of a Fetcher.
type Scraper struct {
	Fetcher      hscrape.Fetcher
	Extractor    *extract.Extractor
	ChromeParser hscrape.ChromeParser
}

// NewScraper returns a Scraper that fetches with f and extracts with e.
func NewScraper(f hscrape.Fetcher, e *extract.Extractor, chrome hscrape.ChromeParser) *Scraper {
	return &Scraper{Fetcher: f, Extractor: e, ChromeParser: chrome}
}

func (s *Scraper) fetch(ctx context.Context, path string) (markup.Document, error) {
	html, err := s.Fetcher.Fetch(ctx, path)
	if err != nil {
		return markup.Document{}, err
	}
	return markup.New(html), nil
}

// Home fetches the landing page.
func (s *Scraper) Home(ctx context.Context) (*hscrape.Home, error) {
	d, err := s.fetch(ctx, Path(hscrape.PageHome, "", 1))
	if err != nil {
		return nil, err
	}
	home := s.Extractor.Home(d)
	return &home, nil
}

// Trending fetches a page of the trending series list.
func (s *Scraper) Trending(ctx context.Context, page int) (*hscrape.Listing, error) {
	return s.listing(ctx, hscrape.PageTrending, "", page)
}

// Genre fetches a page of the series tagged with the genre slug.
func (s *Scraper) Genre(ctx context.Context, slug string, page int) (*hscrape.Listing, error) {
	slug, err := cleanSlug(slug, "genre")
	if err != nil {
		return nil, err
	}
	return s.listing(ctx, hscrape.PageGenre, slug, page)
}

// Uncensored fetches a page of the uncensored series list.
func (s *Scraper) Uncensored(ctx context.Context, page int) (*hscrape.Listing, error) {
	return s.listing(ctx, hscrape.PageUncensored, "", page)
}

// Release fetches a page of the series released in year.
func (s *Scraper) Release(ctx context.Context, year string, page int) (*hscrape.Listing, error) {
	year = strings.TrimSpace(year)
	if !fourDigitYear.MatchString(year) {
		return nil, hscrape.Errorf(hscrape.EINVALID, "year must have four digits, got %q", year)
	}
	return s.listing(ctx, hscrape.PageRelease, year, page)
}

// SeriesIndex fetches a page of the full series index.
func (s *Scraper) SeriesIndex(ctx context.Context, page int) (*hscrape.Listing, error) {
	return s.listing(ctx, hscrape.PageSeriesIndex, "", page)
}

func (s *Scraper) listing(ctx context.Context, kind hscrape.PageKind, arg string, page int) (*hscrape.Listing, error) {
	page = max(page, 1)
	d, err := s.fetch(ctx, Path(kind, arg, page))
	if err != nil {
		return nil, err
	}
	l := s.Extractor.Listing(d, page)
	l.Slug = arg
	if l.Name == "" {
		l.Name = arg
	}
	return &l, nil
}

// Videos fetches a page of the episode archive.
func (s *Scraper) Videos(ctx context.Context, page int) (*hscrape.EpisodeListing, error) {
	page = max(page, 1)
	d, err := s.fetch(ctx, Path(hscrape.PageVideos, "", page))
	if err != nil {
		return nil, err
	}
	l := s.Extractor.EpisodeListing(d, page)
	return &l, nil
}

// Search fetches a page of search results for query.
func (s *Scraper) Search(ctx context.Context, query string, page int) (*hscrape.SearchPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, hscrape.Errorf(hscrape.EINVALID, "search query required")
	}
	page = max(page, 1)
	d, err := s.fetch(ctx, Path(hscrape.PageSearch, query, page))
	if err != nil {
		return nil, err
	}
	sp := s.Extractor.Search(d, query, page)
	return &sp, nil
}

// Genres fetches the genre list with series counts.
func (s *Scraper) Genres(ctx context.Context) ([]hscrape.GenreSummary, error) {
	d, err := s.fetch(ctx, Path(hscrape.PageGenres, "", 1))
	if err != nil {
		return nil, err
	}
	return s.Extractor.GenreIndex(d), nil
}

// Calendar fetches the release schedule.
func (s *Scraper) Calendar(ctx context.Context) (*hscrape.Calendar, error) {
	d, err := s.fetch(ctx, Path(hscrape.PageCalendar, "", 1))
	if err != nil {
		return nil, err
	}
	cal := s.Extractor.Calendar(d)
	return &cal, nil
}

// Series fetches a series detail page.
func (s *Scraper) Series(ctx context.Context, slug string) (*hscrape.SeriesDetail, error) {
	slug, err := cleanSlug(slug, "series")
	if err != nil {
		return nil, err
	}
	d, err := s.fetch(ctx, Path(hscrape.PageSeries, slug, 1))
	if err != nil {
		return nil, err
	}
	detail := s.Extractor.Series(d, slug)
	return &detail, nil
}

// Watch fetches an episode's watch page, then its player document for the
// quality list. When the player cannot be fetched, a single source is
// built from the direct URL the watch page's player address carries.
func (s *Scraper) Watch(ctx context.Context, slug string) (*hscrape.Watch, error) {
	slug, err := cleanSlug(slug, "episode")
	if err != nil {
		return nil, err
	}
	d, err := s.fetch(ctx, Path(hscrape.PageWatch, slug, 1))
	if err != nil {
		return nil, err
	}
	w := s.Extractor.Watch(d, slug)

	var player markup.Document
	if w.Player.OriginalSrc != "" {
		if p, err := s.fetch(ctx, w.Player.OriginalSrc); err == nil {
			player = p
		} else if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	extract.AttachSources(&w, s.Extractor.VideoSources(player, w.Player.Src))
	return &w, nil
}

// Download fetches an episode's download page.
func (s *Scraper) Download(ctx context.Context, slug string) (*hscrape.Download, error) {
	slug, err := cleanSlug(slug, "episode")
	if err != nil {
		return nil, err
	}
	d, err := s.fetch(ctx, Path(hscrape.PageDownload, slug, 1))
	if err != nil {
		return nil, err
	}
	dl := s.Extractor.Download(d, slug)
	return &dl, nil
}

// Chrome fetches the landing page and parses its navigation chrome.
func (s *Scraper) Chrome(ctx context.Context) (*hscrape.SiteChrome, error) {
	html, err := s.Fetcher.Fetch(ctx, Path(hscrape.PageChrome, "", 1))
	if err != nil {
		return nil, err
	}
	return s.ChromeParser.ParseChrome(html)
}

// cleanSlug trims surrounding space and slashes from a slug and rejects
// an empty one.
func cleanSlug(slug, what string) (string, error) {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	if slug == "" {
		return "", hscrape.Errorf(hscrape.EINVALID, "%s slug required", what)
	}
	return slug, nil
}
