package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

var (
	screenshot     = regexp.MustCompile(`(?i)/\d+-\d+\.(?:jpg|jpeg|png|webp)$`)
	mainThumbnail  = regexp.MustCompile(`/uploads/\d+/[^/]+/1\.jpg$`)
	uploadedJPEG   = regexp.MustCompile(`/uploads/.+\.jpg$`)
	locationHref   = regexp.MustCompile(`location\.href\s*=\s*['"]([^'"]+)['"]`)
	qualityText    = regexp.MustCompile(`(?i)(\d{3,4}p)\s*$`)
	ldPublished    = regexp.MustCompile(`"datePublished"\s*:\s*"([^"]+)"`)
	ldModified     = regexp.MustCompile(`"dateModified"\s*:\s*"([^"]+)"`)
	ldDescription  = regexp.MustCompile(`"description"\s*:\s*"([^"]+)"`)
	shareCountText = regexp.MustCompile(`\d+`)
)

// Download assembles an episode's download page.
func (e *Extractor) Download(d markup.Document, slug string) hscrape.Download {
	title := downloadSuffix.ReplaceAllString(d.InnerText("h1"), "")
	series, episode := splitTitle(title)

	dl := hscrape.Download{
		ID:           pageID(d),
		Slug:         slug,
		Title:        title,
		SeriesTitle:  series,
		EpisodeTitle: episode,
		DownloadURL:  e.canonical(d, "/download/"+slug+"/"),
		WatchURL:     e.Resolve(meta(d, "property", "og:url")),
		Thumbnail:    e.downloadThumbnail(d),
		Previews:     []string{},
		Sources:      e.downloadSources(d),
		SeriesURL:    e.seriesOf(d),
		ShareCount:   "0",
		Related:      e.RelatedSeries(matching(d, quoted("id", "single_relacionados")...)),
	}
	for _, src := range metas(d, "property", "og:image") {
		if screenshot.MatchString(src) {
			dl.Previews = append(dl.Previews, e.Resolve(src))
		}
	}
	dl.Previews = dedupe(dl.Previews)
	dl.PrevEpisode, dl.NextEpisode = e.Neighbours(d, downloadLink)

	if n := shareCountText.FindString(firstText(d.FindByAttr("b", "id", "social_count"))); n != "" {
		dl.ShareCount = n
	}

	ld := linkedData(d)
	dl.DatePublished, dl.DateModified, dl.Description = ld.DatePublished, ld.DateModified, ld.Description
	if !ld.parsed {
		raw := ldText(d)
		dl.DatePublished = submatch(ldPublished, raw)
		dl.DateModified = submatch(ldModified, raw)
		dl.Description = submatch(ldDescription, raw)
	}
	if dl.Description == "" {
		dl.Description = meta(d, "name", "description")
	}
	return dl
}

// ldText returns the raw text of every ld+json block, for reading fields out
// of blocks that are not valid JSON.
func ldText(d markup.Document) string {
	var b strings.Builder
	for _, s := range d.FindByAttr("script", "type", "application/ld+json") {
		b.WriteString(s.Inner().String())
		b.WriteByte('\n')
	}
	return b.String()
}

// downloadThumbnail prefers the episode's first full-size still over the
// other uploaded images on the page.
func (e *Extractor) downloadThumbnail(d markup.Document) string {
	var fallback string
	for _, img := range d.FindAll("img") {
		src := markup.PreferLazySource(img)
		if mainThumbnail.MatchString(src) {
			return e.Resolve(src)
		}
		if fallback == "" && uploadedJPEG.MatchString(src) {
			fallback = src
		}
	}
	return e.Resolve(fallback)
}

// downloadSources reads the mirror buttons, skipping the one that leads
// back to online playback.
func (e *Extractor) downloadSources(d markup.Document) []hscrape.DownloadSource {
	block := matching(d, quoted("class", "_4continuar")...)
	sources := []hscrape.DownloadSource{}
	for _, btn := range block.FindAll("button") {
		text := btn.TextContent()
		if btn.Contains("fa-play-circle") || strings.Contains(strings.ToLower(text), "watch online") {
			continue
		}
		target := submatch(locationHref, btn.OwnAttr("onclick"))
		if target == "" {
			continue
		}
		target = e.Resolve(target)
		label := submatch(qualityText, text)
		if label == "" {
			label = text
		}
		var host string
		if u, err := url.Parse(target); err == nil {
			host = u.Hostname()
		}
		sources = append(sources, hscrape.DownloadSource{URL: target, Label: label, Host: host})
	}
	return sources
}
