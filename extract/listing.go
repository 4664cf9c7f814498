package extract

import (
	"strconv"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

// listingSection bounds the main card grid, leaving out sidebar widgets.
func listingSection(d markup.Document) markup.Document {
	if s := markup.BoundToLandmark(d, `class="items full"`, `<div class="pagination`); !s.IsEmpty() {
		return s
	}
	return markup.BoundToLandmark(d, `id="archive-content"`, `<div class="pagination`, `<div class="sidebar`)
}

// Listing assembles a page of series cards: trending, genre, uncensored,
// release-year and series index pages all share this layout.
func (e *Extractor) Listing(d markup.Document, page int) hscrape.Listing {
	return hscrape.Listing{
		Name:       d.FirstClass("h1", "heading-archive").TextContent(),
		Items:      e.ListingCards(listingSection(d)),
		Pagination: Pagination(d, page),
		TotalItems: TotalItems(d),
	}
}

// EpisodeListing assembles a page of the episode archive.
func (e *Extractor) EpisodeListing(d markup.Document, page int) hscrape.EpisodeListing {
	return hscrape.EpisodeListing{
		Items:      e.EpisodeCards(listingSection(d)),
		Pagination: Pagination(d, page),
		TotalItems: TotalItems(d),
	}
}

// Home assembles the landing page.
func (e *Extractor) Home(d markup.Document) hscrape.Home {
	return hscrape.Home{
		Featured:       e.ListingCards(matching(d, quoted("id", "featured-titles")...)),
		LatestEpisodes: e.EpisodeCards(matching(d, quoted("id", "dt-episodes")...)),
	}
}

// Search assembles a page of search results for query.
func (e *Extractor) Search(d markup.Document, query string, page int) hscrape.SearchPage {
	content := markup.BoundToLandmark(d, `class="search-page"`, `<div class="sidebar`)
	results := []hscrape.SearchResult{}
	for _, item := range content.FindClass("div", "result-item") {
		if r, ok := e.SearchResult(item); ok {
			results = append(results, r)
		}
	}
	return hscrape.SearchPage{
		Query:      query,
		Results:    results,
		Pagination: Pagination(d, page),
	}
}

// GenreIndex parses the genre navigation list with its series counts.
func (e *Extractor) GenreIndex(d markup.Document) []hscrape.GenreSummary {
	nav := markup.BoundMatching(d, `<nav class="genres"`)
	genres := []hscrape.GenreSummary{}
	for _, li := range nav.FindClass("li", "cat-item") {
		href := li.Attr("a", "href")
		slug := submatch(genreSlug, href)
		if slug == "" {
			continue
		}
		count, _ := strconv.Atoi(li.InnerText("i"))
		genres = append(genres, hscrape.GenreSummary{
			Name:  li.InnerText("a"),
			Slug:  slug,
			URL:   e.Resolve(href),
			Count: count,
		})
	}
	return genres
}
