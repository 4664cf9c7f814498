// Package extract turns fetched pages into hscrape records.
//
// Every function here is a pure transformation of markup already in memory.
// Missing sections, elements and attributes yield empty values; nothing in
// this package returns an error.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

// Extractor assembles records from page markup. It is safe for concurrent use.
type Extractor struct {
	resolver markup.Resolver
	now      func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock sets the clock used to anchor relative timestamps such as
// "3 days ago". Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// New returns an Extractor resolving relative references against origin.
func New(origin string, opts ...Option) *Extractor {
	e := &Extractor{
		resolver: markup.NewResolver(origin),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve returns ref as an absolute URL on the extractor's origin.
func (e *Extractor) Resolve(ref string) string {
	return e.resolver.Resolve(ref)
}

var (
	postIDClass  = regexp.MustCompile(`postid-(\d+)`)
	postIDAttr   = regexp.MustCompile(`data-post-id=["'](\d+)["']`)
	yearPattern  = regexp.MustCompile(`\b(\d{4})\b`)
	seriesLink   = regexp.MustCompile(`/series/[^/?#"']+`)
	videosLink   = regexp.MustCompile(`/videos/[^/?#"']+`)
	downloadLink = regexp.MustCompile(`/download/[^/?#"']+`)
	genreSlug    = regexp.MustCompile(`/genre/([^/?#"']+)`)
)

// censorship applies one convention to every entity kind: each explicit
// state needs its own marker, and a fragment carrying neither is unknown.
func censorship(d markup.Document) hscrape.Censorship {
	switch {
	case d.Contains("buttoncensured"):
		return hscrape.CensorshipCensored
	case d.Contains("buttonuncensured"):
		return hscrape.CensorshipUncensored
	default:
		return hscrape.CensorshipUnknown
	}
}

func submatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// pageID returns the numeric post ID of a detail page.
func pageID(d markup.Document) string {
	if id := submatch(postIDClass, d.String()); id != "" {
		return id
	}
	return submatch(postIDAttr, d.String())
}

// fragmentID returns the numeric part of a card's post-N id attribute.
func fragmentID(d markup.Document) string {
	return strings.TrimPrefix(d.OwnAttr("id"), "post-")
}

// link returns the first anchor href in d that matches re, resolved.
func (e *Extractor) link(d markup.Document, re *regexp.Regexp) string {
	for _, href := range d.Attrs("a", "href") {
		if re.MatchString(href) {
			return e.Resolve(href)
		}
	}
	return ""
}

// image returns the resolved real source of the first image in d.
func (e *Extractor) image(d markup.Document) string {
	return e.Resolve(markup.PreferLazySource(d))
}

// section returns the first non-empty bounded section among markers.
func section(d markup.Document, bound func(markup.Document, string) markup.Document, markers ...string) markup.Document {
	for _, m := range markers {
		if s := bound(d, m); !s.IsEmpty() {
			return s
		}
	}
	return markup.Document{}
}

// matching bounds by the depth-matched closing tag.
func matching(d markup.Document, markers ...string) markup.Document {
	return section(d, markup.BoundMatching, markers...)
}

// quoted returns attr=value in both quote styles, for markers on markup
// that mixes them.
func quoted(attr, value string) []string {
	return []string{attr + `="` + value + `"`, attr + `='` + value + `'`}
}

// meta returns the content of the first meta tag whose key attribute
// (property, name or itemprop) equals value.
func meta(d markup.Document, key, value string) string {
	for _, m := range d.FindByAttr("meta", key, value) {
		if c := m.OwnAttr("content"); c != "" {
			return c
		}
	}
	return ""
}

// metas returns the content of every meta tag whose key attribute equals value.
func metas(d markup.Document, key, value string) []string {
	var vals []string
	for _, m := range d.FindByAttr("meta", key, value) {
		if c := m.OwnAttr("content"); c != "" {
			vals = append(vals, c)
		}
	}
	return vals
}

// canonical returns the page's canonical URL or fallback.
func (e *Extractor) canonical(d markup.Document, fallback string) string {
	for _, l := range d.FindByAttr("link", "rel", "canonical") {
		if href := l.OwnAttr("href"); href != "" {
			return e.Resolve(href)
		}
	}
	return e.Resolve(fallback)
}

// tags returns the named links inside d, e.g. a genre box.
func (e *Extractor) tags(d markup.Document) []hscrape.Tag {
	tags := []hscrape.Tag{}
	for _, a := range d.FindAll("a") {
		url := e.Resolve(a.OwnAttr("href"))
		name := a.TextContent()
		if url == "" || name == "" {
			continue
		}
		tags = append(tags, hscrape.Tag{Name: name, URL: url})
	}
	return tags
}

// dedupe drops empty and repeated strings, keeping first occurrences.
func dedupe(vals []string) []string {
	seen := make(map[string]bool, len(vals))
	out := []string{}
	for _, v := range vals {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
