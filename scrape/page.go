package scrape

import (
	"context"

	"github.com/fwojciec/hscrape"
)

// Page scrapes one page of kind through s and returns its record, along
// with the page's pagination for paginated kinds. arg is the slug, year or
// query the kind needs.
func Page(ctx context.Context, s hscrape.Scraper, kind hscrape.PageKind, arg string, page int) (any, *hscrape.Pagination, error) {
	var (
		rec any
		p   *hscrape.Pagination
		err error
	)
	switch kind {
	case hscrape.PageTrending, hscrape.PageGenre, hscrape.PageUncensored, hscrape.PageRelease, hscrape.PageSeriesIndex:
		var l *hscrape.Listing
		if l, err = listing(ctx, s, kind, arg, page); l != nil {
			rec, p = l, &l.Pagination
		}
	case hscrape.PageVideos:
		var l *hscrape.EpisodeListing
		if l, err = s.Videos(ctx, page); l != nil {
			rec, p = l, &l.Pagination
		}
	case hscrape.PageSearch:
		var sp *hscrape.SearchPage
		if sp, err = s.Search(ctx, arg, page); sp != nil {
			rec, p = sp, &sp.Pagination
		}
	case hscrape.PageHome:
		rec, err = s.Home(ctx)
	case hscrape.PageGenres:
		rec, err = s.Genres(ctx)
	case hscrape.PageCalendar:
		rec, err = s.Calendar(ctx)
	case hscrape.PageChrome:
		rec, err = s.Chrome(ctx)
	case hscrape.PageSeries:
		rec, err = s.Series(ctx, arg)
	case hscrape.PageWatch:
		rec, err = s.Watch(ctx, arg)
	case hscrape.PageDownload:
		rec, err = s.Download(ctx, arg)
	default:
		return nil, nil, hscrape.Errorf(hscrape.EINVALID, "unknown page kind %q", kind)
	}
	if err != nil {
		return nil, nil, err
	}
	return rec, p, nil
}

func listing(ctx context.Context, s hscrape.Scraper, kind hscrape.PageKind, arg string, page int) (*hscrape.Listing, error) {
	switch kind {
	case hscrape.PageTrending:
		return s.Trending(ctx, page)
	case hscrape.PageGenre:
		return s.Genre(ctx, arg, page)
	case hscrape.PageUncensored:
		return s.Uncensored(ctx, page)
	case hscrape.PageRelease:
		return s.Release(ctx, arg, page)
	default:
		return s.SeriesIndex(ctx, page)
	}
}
