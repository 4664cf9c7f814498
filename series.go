package hscrape

// Tag is a named link such as a genre attached to a series.
type Tag struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Episode is one entry of a series' episode list.
type Episode struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Date      string `json:"date"`
	IsCurrent bool   `json:"isCurrent"`
}

// RelatedSeries is a link to another series shown alongside a detail page.
type RelatedSeries struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Poster string `json:"poster"`
}

// SeriesFacts holds the labelled key/value block of a series page.
// Only the known labels are recognised; unknown labels are ignored.
type SeriesFacts struct {
	AlternativeTitle string `json:"alternativeTitle"`
	FirstAirDate     string `json:"firstAirDate"`
	LastAirDate      string `json:"lastAirDate"`
	Seasons          string `json:"seasons"`
	Episodes         string `json:"episodes"`
	AverageDuration  string `json:"averageDuration"`
	Quality          string `json:"quality"`
	Studio           string `json:"studio"`
}

// SeriesDetail is the full record assembled from a series page. Every
// sub-block is optional; numeric metadata defaults to the empty string.
type SeriesDetail struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	URL         string          `json:"url"`
	Title       string          `json:"title"`
	Poster      string          `json:"poster"`
	Year        string          `json:"year"`
	Censorship  Censorship      `json:"censorship"`
	DateCreated string          `json:"dateCreated"`
	Genres      []Tag           `json:"genres"`
	Rating      string          `json:"rating"`
	RatingCount string          `json:"ratingCount"`
	Favorites   string          `json:"favorites"`
	Views       string          `json:"views"`
	Synopsis    string          `json:"synopsis"`
	Backdrops   []string        `json:"backdrops"`
	Facts       SeriesFacts     `json:"facts"`
	Episodes    []Episode       `json:"episodes"`
	Related     []RelatedSeries `json:"related"`
}
