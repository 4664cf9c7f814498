package extract

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

var (
	sourcesBlock  = regexp.MustCompile(`(?s)\bsources\s*:\s*(\[.*?\])`)
	playerFile    = regexp.MustCompile(`["']?\bfile["']?\s*:\s*["']([^"']+)["']`)
	playerImage   = regexp.MustCompile(`["']?\bimage["']?\s*:\s*["']([^"']+)["']`)
	isoDuration   = regexp.MustCompile(`"duration"\s*:\s*"(P[^"]+)"`)
	qualitySuffix = regexp.MustCompile(`(?i)[_\-./](\d{3,4}p)\b`)
	sourceParam   = regexp.MustCompile(`[?&]source=([^&#]+)`)
)

// jsonSource is one entry of a player's sources array.
type jsonSource struct {
	File  string `json:"file"`
	Src   string `json:"src"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// VideoSources parses a player document. Quality variants are read from the
// player's sources array, then from <source> tags. When neither yields
// anything a single variant is synthesized from the default URL, which is
// the player's own file or fallback.
func (e *Extractor) VideoSources(d markup.Document, fallback string) hscrape.VideoSources {
	scripts := scriptText(d)
	ld := linkedData(d)

	vs := hscrape.VideoSources{
		Sources:     e.scriptSources(scripts),
		Default:     e.Resolve(scriptValue(playerFile, scripts)),
		Thumbnail:   e.Resolve(scriptValue(playerImage, scripts)),
		Duration:    ld.Duration,
		DownloadURL: e.link(d, downloadLink),
	}
	if len(vs.Sources) == 0 {
		vs.Sources = e.tagSources(d)
	}
	if vs.Default == "" && len(vs.Sources) > 0 {
		vs.Default = vs.Sources[0].Src
	}
	if vs.Default == "" {
		vs.Default = e.Resolve(d.Attr("video", "src"))
	}
	if vs.Default == "" {
		vs.Default = e.Resolve(fallback)
	}
	if len(vs.Sources) == 0 && vs.Default != "" {
		vs.Sources = []hscrape.VideoSource{{Src: vs.Default, Type: mimeType(vs.Default), Label: qualityLabel(vs.Default)}}
	}
	if vs.Sources == nil {
		vs.Sources = []hscrape.VideoSource{}
	}
	if vs.Thumbnail == "" {
		vs.Thumbnail = e.Resolve(ld.ThumbnailURL)
	}
	if vs.Thumbnail == "" {
		vs.Thumbnail = e.Resolve(markup.UnwrapProxiedImage(d.Attr("video", "poster")))
	}
	if vs.Duration == "" {
		vs.Duration = submatch(isoDuration, scripts)
	}
	return vs
}

// scriptSources strictly decodes the first sources array found in the
// player scripts. A block that is not valid JSON yields nothing.
func (e *Extractor) scriptSources(scripts string) []hscrape.VideoSource {
	m := sourcesBlock.FindStringSubmatch(scripts)
	if m == nil {
		return nil
	}
	var raw []jsonSource
	if err := json.Unmarshal([]byte(m[1]), &raw); err != nil {
		return nil
	}
	var sources []hscrape.VideoSource
	for _, s := range raw {
		src := s.File
		if src == "" {
			src = s.Src
		}
		if src = e.Resolve(src); src == "" {
			continue
		}
		sources = append(sources, e.videoSource(src, s.Type, s.Label))
	}
	return sources
}

// tagSources reads <source> children of the player's video element.
func (e *Extractor) tagSources(d markup.Document) []hscrape.VideoSource {
	var sources []hscrape.VideoSource
	for _, s := range d.FindAll("source") {
		src := e.Resolve(s.OwnAttr("src"))
		if src == "" {
			continue
		}
		label := s.OwnAttr("label")
		if label == "" {
			label = s.OwnAttr("size")
		}
		if label == "" {
			label = s.OwnAttr("res")
		}
		if label != "" && !strings.HasSuffix(strings.ToLower(label), "p") && isDigits(label) {
			label += "p"
		}
		sources = append(sources, e.videoSource(src, s.OwnAttr("type"), label))
	}
	return sources
}

func (e *Extractor) videoSource(src, typ, label string) hscrape.VideoSource {
	if typ == "" {
		typ = mimeType(src)
	} else if !strings.Contains(typ, "/") {
		typ = mimeType("." + typ)
	}
	if label == "" {
		label = qualityLabel(src)
	}
	return hscrape.VideoSource{Src: src, Type: typ, Label: label}
}

// qualityLabel guesses a label such as "1080p" from a URL, or "default".
func qualityLabel(src string) string {
	if l := submatch(qualitySuffix, src); l != "" {
		return strings.ToLower(l)
	}
	return "default"
}

func mimeType(src string) string {
	if strings.Contains(strings.ToLower(src), ".m3u8") {
		return "application/x-mpegURL"
	}
	if strings.Contains(strings.ToLower(src), ".webm") {
		return "video/webm"
	}
	return "video/mp4"
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// scriptValue returns a captured script string with JSON slash escapes undone.
func scriptValue(re *regexp.Regexp, scripts string) string {
	return strings.ReplaceAll(submatch(re, scripts), `\/`, "/")
}

// scriptText joins the raw contents of every script element in d.
func scriptText(d markup.Document) string {
	var b strings.Builder
	for _, s := range d.FindAll("script") {
		b.WriteString(s.Inner().String())
		b.WriteByte('\n')
	}
	return b.String()
}

// linkedNode holds the JSON-LD properties read from player and download pages.
type linkedNode struct {
	Type          any    `json:"@type"`
	Duration      string `json:"duration"`
	ThumbnailURL  any    `json:"thumbnailUrl"`
	DatePublished string `json:"datePublished"`
	DateModified  string `json:"dateModified"`
	Description   string `json:"description"`
}

// linkedDataResult is the merged view of a page's JSON-LD blocks.
type linkedDataResult struct {
	Duration      string
	ThumbnailURL  string
	DatePublished string
	DateModified  string
	Description   string
	parsed        bool
}

// linkedData decodes every ld+json block in d. Yoast style @graph wrappers
// are unwrapped; WebPage and Article nodes supply the publication dates.
// Blocks that fail to decode are skipped.
func linkedData(d markup.Document) linkedDataResult {
	var out linkedDataResult
	for _, s := range d.FindByAttr("script", "type", "application/ld+json") {
		for _, n := range decodeLinkedNodes(s.Inner().String()) {
			out.parsed = true
			if out.Duration == "" {
				out.Duration = n.Duration
			}
			if out.ThumbnailURL == "" {
				out.ThumbnailURL = firstString(n.ThumbnailURL)
			}
			if !hasType(n.Type, "WebPage", "Article") {
				continue
			}
			if out.DatePublished == "" {
				out.DatePublished = n.DatePublished
			}
			if out.DateModified == "" {
				out.DateModified = n.DateModified
			}
			if out.Description == "" {
				out.Description = n.Description
			}
		}
	}
	return out
}

func decodeLinkedNodes(text string) []linkedNode {
	text = strings.TrimSpace(text)
	var graph struct {
		Graph []linkedNode `json:"@graph"`
	}
	if err := json.Unmarshal([]byte(text), &graph); err == nil && len(graph.Graph) > 0 {
		return graph.Graph
	}
	var list []linkedNode
	if err := json.Unmarshal([]byte(text), &list); err == nil {
		return list
	}
	var node linkedNode
	if err := json.Unmarshal([]byte(text), &node); err == nil {
		return []linkedNode{node}
	}
	return nil
}

// firstString returns v when it is a string, or the first string of a list.
func firstString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		for _, x := range t {
			if s, ok := x.(string); ok {
				return s
			}
		}
	}
	return ""
}

func hasType(v any, want ...string) bool {
	var types []string
	switch t := v.(type) {
	case string:
		types = []string{t}
	case []any:
		for _, x := range t {
			if s, ok := x.(string); ok {
				types = append(types, s)
			}
		}
	}
	for _, typ := range types {
		for _, w := range want {
			if typ == w {
				return true
			}
		}
	}
	return false
}

// playerParams holds what the watch page's player URL encodes.
type playerParams struct {
	direct    string
	alternate string
	kind      string
	postID    string
}

// parsePlayerURL reads the direct video URL, media type and post ID from a
// player URL such as /jwplayer/?source=<escaped mp4>&id=6457&type=mp4.
func parsePlayerURL(raw string) playerParams {
	p := playerParams{kind: "mp4"}
	if raw == "" {
		return p
	}
	switch {
	case strings.Contains(raw, "/jwplayer/"):
		p.alternate = strings.Replace(raw, "/jwplayer/", "/plyr/", 1)
	case strings.Contains(raw, "/plyr/"):
		p.alternate = strings.Replace(raw, "/plyr/", "/jwplayer/", 1)
	}

	if u, err := url.Parse(raw); err == nil {
		q := u.Query()
		p.direct = q.Get("source")
		p.postID = q.Get("id")
		if t := q.Get("type"); t != "" {
			p.kind = strings.TrimSpace(strings.Split(t, ",")[0])
		}
	}
	if p.direct == "" {
		if src := submatch(sourceParam, raw); src != "" {
			if decoded, err := url.QueryUnescape(src); err == nil {
				src = decoded
			}
			p.direct = src
		}
	}
	return p
}
