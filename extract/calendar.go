package extract

import (
	"regexp"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

var lastUpdate = regexp.MustCompile(`(?i)Last Update:\s*<strong>([^<]+)</strong>`)

// Calendar assembles the release schedule. The page lists months as a
// heading followed by an archive grid; markup before the first heading is
// not part of any month.
func (e *Extractor) Calendar(d markup.Document) hscrape.Calendar {
	content := markup.BoundToLandmark(d, `class="calendar-page-content"`, `<div class="sidebar`)

	cal := hscrape.Calendar{Months: []hscrape.CalendarMonth{}}
	if v := markup.CollapseSpace(markup.DecodeEntities(submatch(lastUpdate, content.String()))); v != "" {
		cal.LastUpdate = &v
	}
	for _, block := range markup.SplitAt(content, "<header") {
		month := block.InnerText("h2")
		if month == "" || !block.Contains("archive-content") {
			continue
		}
		entries := []hscrape.CalendarEntry{}
		for _, art := range block.FindAllFlat("article") {
			if entry, ok := e.calendarEntry(art); ok {
				entries = append(entries, entry)
			}
		}
		cal.Months = append(cal.Months, hscrape.CalendarMonth{Month: month, Episodes: entries})
	}
	return cal
}

func (e *Extractor) calendarEntry(art markup.Document) (hscrape.CalendarEntry, bool) {
	entry := hscrape.CalendarEntry{
		ReleaseDate: art.FirstClass("div", "buttonextra").TextContent(),
		Poster:      e.image(art),
	}
	for _, a := range art.FindAll("a") {
		href := a.OwnAttr("href")
		switch {
		case entry.SeriesURL == "" && seriesLink.MatchString(href):
			entry.SeriesURL = e.Resolve(href)
			entry.SeriesTitle = a.FirstClass("span", "serie").TextContent()
		case entry.EpisodeURL == "" && videosLink.MatchString(href):
			entry.EpisodeURL = e.Resolve(href)
			entry.EpisodeTitle = a.InnerText("h3")
		}
	}
	if entry.SeriesTitle == "" {
		entry.SeriesTitle = art.FirstClass("span", "serie").TextContent()
	}
	if entry.EpisodeTitle == "" {
		entry.EpisodeTitle = art.InnerText("h3")
	}
	return entry, entry.SeriesURL != "" || entry.EpisodeURL != ""
}
