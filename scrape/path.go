package scrape

import (
	"net/url"
	"strconv"

	"github.com/fwojciec/hscrape"
)

// Path returns the site path of a page. arg is the genre slug, release
// year, search query or detail slug for the kinds that take one, and page
// selects a page of a paginated kind. Kinds without pages ignore page.
func Path(kind hscrape.PageKind, arg string, page int) string {
	switch kind {
	case hscrape.PageTrending:
		return paged("/trending/", page)
	case hscrape.PageGenre:
		return paged("/genre/"+url.PathEscape(arg)+"/", page)
	case hscrape.PageUncensored:
		return paged("/genre/uncensored/", page)
	case hscrape.PageRelease:
		return paged("/release/"+url.PathEscape(arg)+"/", page)
	case hscrape.PageSeriesIndex, hscrape.PageGenres:
		return paged("/series/", page)
	case hscrape.PageVideos:
		return paged("/videos/", page)
	case hscrape.PageSearch:
		return paged("/", page) + "?s=" + url.QueryEscape(arg)
	case hscrape.PageCalendar:
		return "/calendar/"
	case hscrape.PageSeries:
		return "/series/" + url.PathEscape(arg) + "/"
	case hscrape.PageWatch:
		return "/videos/" + url.PathEscape(arg) + "/"
	case hscrape.PageDownload:
		return "/download/" + url.PathEscape(arg) + "/"
	default:
		return "/"
	}
}

func paged(base string, page int) string {
	if page <= 1 {
		return base
	}
	return base + "page/" + strconv.Itoa(page) + "/"
}
