package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

var (
	watchSuffix    = regexp.MustCompile(`(?i)\s*-\s*Watch Hentai\s*$`)
	downloadSuffix = regexp.MustCompile(`(?i)\s+download\s*$`)
	episodeSplit   = regexp.MustCompile(`(?i)\s*[–—\-]\s*Episode\s+`)
	viewsText      = regexp.MustCompile(`(?i)data-text=["'](\d[\d,]*)\s*Views["']`)
)

// splitTitle splits "Series – Episode 3" into its series and episode parts.
func splitTitle(title string) (series, episode string) {
	parts := episodeSplit.Split(title, 2)
	series = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		episode = "Episode " + strings.TrimSpace(parts[1])
	}
	return series, episode
}

// playerURL returns the address of the embedded player.
func playerURL(d markup.Document) string {
	frames := d.FindByAttr("iframe", "id", "search_iframe")
	frames = append(frames, d.FindClass("iframe", "metaframe")...)
	frames = append(frames, d.FindAll("iframe")...)
	for _, f := range frames {
		for _, attr := range []string{"data-litespeed-src", "data-src", "src"} {
			if v := f.OwnAttr(attr); v != "" && v != "about:blank" {
				return v
			}
		}
	}
	return meta(d, "itemprop", "contentUrl")
}

// Watch assembles an episode's watch page. The player's quality list lives
// in a separate document; until AttachSources is called, Player carries
// only what the page's player URL encodes.
func (e *Extractor) Watch(d markup.Document, slug string) hscrape.Watch {
	title := watchSuffix.ReplaceAllString(d.InnerText("h1"), "")
	series, episode := splitTitle(title)

	rawPlayer := playerURL(d)
	params := parsePlayerURL(rawPlayer)

	w := hscrape.Watch{
		ID:           pageID(d),
		Slug:         slug,
		URL:          e.canonical(d, "/videos/"+slug+"/"),
		Title:        title,
		SeriesTitle:  series,
		EpisodeTitle: episode,
		Thumbnail:    e.Resolve(meta(d, "itemprop", "thumbnailUrl")),
		UploadDate:   meta(d, "itemprop", "uploadDate"),
		Views:        submatch(viewsText, d.String()),
		SeriesURL:    e.seriesOf(d),
		SeriesPoster: e.poster(d),
		Censorship:   hscrape.CensorshipUnknown,
		Genres:       e.tags(d.FirstClass("div", "sgeneros")),
		Synopsis:     d.FirstClass("div", "synopsis").InnerText("p"),
		Episodes:     e.Episodes(d),
	}
	if w.Thumbnail == "" {
		w.Thumbnail = e.Resolve(meta(d, "property", "og:image"))
	}
	if w.Views == "" {
		w.Views = meta(d, "itemprop", "userInteractionCount")
	}
	if info := matching(d, quoted("id", "info")...); !info.IsEmpty() {
		w.Censorship = censorship(info)
	}
	w.PrevEpisode, w.NextEpisode = e.Neighbours(d, videosLink)

	w.Player = hscrape.Player{
		OriginalSrc:  e.Resolve(rawPlayer),
		AlternateSrc: e.Resolve(params.alternate),
		Src:          e.Resolve(params.direct),
		Type:         params.kind,
		PostID:       params.postID,
		Sources:      []hscrape.VideoSource{},
		Thumbnail:    w.Thumbnail,
	}
	if w.Player.PostID == "" {
		w.Player.PostID = w.ID
	}
	return w
}

// AttachSources merges the sources parsed from the player document into w.
func AttachSources(w *hscrape.Watch, vs hscrape.VideoSources) {
	w.Player.Sources = vs.Sources
	if vs.Default != "" {
		w.Player.Src = vs.Default
	}
	if vs.Thumbnail != "" {
		w.Player.Thumbnail = vs.Thumbnail
	}
	w.Player.Duration = vs.Duration
	w.Player.DownloadURL = vs.DownloadURL
}
