package hscrape

// VideoSource is one playable quality variant.
type VideoSource struct {
	Src   string `json:"src"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

// VideoSources is everything recovered from a player document. Sources is
// never empty when Default is known: a single entry is synthesized from
// Default if the player exposes no quality list.
type VideoSources struct {
	Sources     []VideoSource `json:"sources"`
	Default     string        `json:"default"`
	Thumbnail   string        `json:"thumbnail"`
	Duration    string        `json:"duration"`
	DownloadURL string        `json:"downloadUrl"`
}

// Player describes the embedded player of a watch page merged with the
// sources found in the player document it points to.
type Player struct {
	OriginalSrc  string        `json:"originalSrc"`
	AlternateSrc string        `json:"alternateSrc"`
	Src          string        `json:"src"`
	Type         string        `json:"type"`
	PostID       string        `json:"postId"`
	Sources      []VideoSource `json:"sources"`
	Thumbnail    string        `json:"thumbnail"`
	Duration     string        `json:"duration"`
	DownloadURL  string        `json:"downloadUrl"`
}

// NavLink is a previous/next episode link.
type NavLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Watch is the record assembled from an episode's watch page.
// PrevEpisode and NextEpisode are nil when the page shows a disabled control.
type Watch struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	URL          string     `json:"url"`
	Title        string     `json:"title"`
	SeriesTitle  string     `json:"seriesTitle"`
	EpisodeTitle string     `json:"episodeTitle"`
	Player       Player     `json:"player"`
	Thumbnail    string     `json:"thumbnail"`
	UploadDate   string     `json:"uploadDate"`
	Views        string     `json:"views"`
	SeriesURL    string     `json:"seriesUrl"`
	SeriesPoster string     `json:"seriesPoster"`
	Censorship   Censorship `json:"censorship"`
	Genres       []Tag      `json:"genres"`
	Synopsis     string     `json:"synopsis"`
	PrevEpisode  *NavLink   `json:"prevEpisode"`
	NextEpisode  *NavLink   `json:"nextEpisode"`
	Episodes     []Episode  `json:"episodes"`
}

// DownloadSource is one download mirror.
type DownloadSource struct {
	URL   string `json:"url"`
	Label string `json:"label"`
	Host  string `json:"host"`
}

// Download is the record assembled from an episode's download page.
type Download struct {
	ID            string           `json:"id"`
	Slug          string           `json:"slug"`
	Title         string           `json:"title"`
	SeriesTitle   string           `json:"seriesTitle"`
	EpisodeTitle  string           `json:"episodeTitle"`
	DownloadURL   string           `json:"downloadUrl"`
	WatchURL      string           `json:"watchUrl"`
	Thumbnail     string           `json:"thumbnail"`
	Previews      []string         `json:"previews"`
	Sources       []DownloadSource `json:"sources"`
	SeriesURL     string           `json:"seriesUrl"`
	PrevEpisode   *NavLink         `json:"prevEpisode"`
	NextEpisode   *NavLink         `json:"nextEpisode"`
	ShareCount    string           `json:"shareCount"`
	Related       []RelatedSeries  `json:"related"`
	DatePublished string           `json:"datePublished"`
	DateModified  string           `json:"dateModified"`
	Description   string           `json:"description"`
}

// CalendarEntry is one scheduled episode release.
type CalendarEntry struct {
	ReleaseDate  string `json:"releaseDate"`
	Poster       string `json:"poster"`
	SeriesTitle  string `json:"seriesTitle"`
	SeriesURL    string `json:"seriesUrl"`
	EpisodeTitle string `json:"episodeTitle"`
	EpisodeURL   string `json:"episodeUrl"`
}

// CalendarMonth groups release entries under a month heading.
type CalendarMonth struct {
	Month    string          `json:"month"`
	Episodes []CalendarEntry `json:"episodes"`
}

// Calendar is the release schedule page.
type Calendar struct {
	LastUpdate *string         `json:"lastUpdate"`
	Months     []CalendarMonth `json:"months"`
}
