package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

// Neighbours parses the previous/next episode controls. Only links whose
// target matches target count; a disabled placeholder yields nil.
func (e *Extractor) Neighbours(d markup.Document, target *regexp.Regexp) (prev, next *hscrape.NavLink) {
	block := matching(d, quoted("class", "pag_episodes")...)
	for _, a := range block.FindAll("a") {
		raw, text := a.String(), strings.ToUpper(a.TextContent())
		switch {
		case strings.Contains(raw, "fa-arrow-alt-circle-left") || strings.Contains(text, "PREV"):
			if prev == nil {
				prev = e.navLink(a, target)
			}
		case strings.Contains(raw, "fa-arrow-alt-circle-right") || strings.Contains(text, "NEXT"):
			if next == nil {
				next = e.navLink(a, target)
			}
		}
	}
	return prev, next
}

func (e *Extractor) navLink(a markup.Document, target *regexp.Regexp) *hscrape.NavLink {
	href := a.OwnAttr("href")
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(strings.ToLower(href), "javascript:") {
		return nil
	}
	if a.HasClass("nonex") || !target.MatchString(href) {
		return nil
	}
	title := a.OwnAttr("title")
	if title == "" {
		title = a.TextContent()
	}
	return &hscrape.NavLink{Title: title, URL: e.Resolve(href)}
}

// seriesOf returns the series link of an episode page, preferring the
// "all episodes" control of the navigation block.
func (e *Extractor) seriesOf(d markup.Document) string {
	if url := e.link(matching(d, quoted("class", "pag_episodes")...), seriesLink); url != "" {
		return url
	}
	return e.link(d, seriesLink)
}
