package hscrape

import "time"

// Censorship is the tri-state censorship label carried by catalogue entries.
// Each explicit state requires its own marker in the source markup; when
// neither marker is present the state is CensorshipUnknown.
type Censorship string

// Censorship constants.
const (
	CensorshipCensored   Censorship = "censored"
	CensorshipUncensored Censorship = "uncensored"
	CensorshipUnknown    Censorship = "unknown"
)

// ListingCard is one series entry in a catalogue listing.
type ListingCard struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	URL        string     `json:"url"`
	Poster     string     `json:"poster"`
	Year       string     `json:"year"`
	Censorship Censorship `json:"censorship"`
}

// EpisodeCard is one episode entry in an episode-flavoured listing.
// Published and Views hold the labels as displayed; PublishedAt and
// ViewCount are their parsed forms when recoverable.
type EpisodeCard struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Series       string     `json:"series"`
	EpisodeTitle string     `json:"episodeTitle"`
	URL          string     `json:"url"`
	Thumbnail    string     `json:"thumbnail"`
	Published    string     `json:"published"`
	PublishedAt  *time.Time `json:"publishedAt"`
	Views        string     `json:"views"`
	ViewCount    int        `json:"viewCount"`
	SubType      string     `json:"subType"`
	Censorship   Censorship `json:"censorship"`
}

// Pagination describes where a listing page sits in its result set.
// Construct it with NewPagination so the flags and neighbours stay
// consistent with CurrentPage and TotalPages.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNextPage"`
	HasPrev     bool `json:"hasPrevPage"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
}

// NewPagination returns the pagination state for current of total.
// Both values are clamped to at least 1.
func NewPagination(current, total int) Pagination {
	if current < 1 {
		current = 1
	}
	if total < 1 {
		total = 1
	}
	p := Pagination{
		CurrentPage: current,
		TotalPages:  total,
		HasNext:     current < total,
		HasPrev:     current > 1,
	}
	if p.HasNext {
		next := current + 1
		p.NextPage = &next
	}
	if p.HasPrev {
		prev := current - 1
		p.PrevPage = &prev
	}
	return p
}

// Listing is a page of series cards: trending, genre, uncensored,
// release-year and the series index all share this shape.
type Listing struct {
	Name       string        `json:"name,omitempty"`
	Slug       string        `json:"slug,omitempty"`
	Items      []ListingCard `json:"items"`
	Pagination Pagination    `json:"pagination"`
	TotalItems *int          `json:"totalItems"`
}

// EpisodeListing is a page of episode cards.
type EpisodeListing struct {
	Items      []EpisodeCard `json:"items"`
	Pagination Pagination    `json:"pagination"`
	TotalItems *int          `json:"totalItems"`
}

// GenreSummary is one entry of the genre index.
type GenreSummary struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// SearchResult is one hit on a search results page.
type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Poster      string `json:"poster"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// SearchPage is a page of search results for Query.
type SearchPage struct {
	Query      string         `json:"query"`
	Results    []SearchResult `json:"results"`
	Pagination Pagination     `json:"pagination"`
}

// Home is the landing page: featured series and the latest episodes.
type Home struct {
	Featured       []ListingCard `json:"featured"`
	LatestEpisodes []EpisodeCard `json:"latestEpisodes"`
}
