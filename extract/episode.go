package extract

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

var (
	markClass     = regexp.MustCompile(`\bmark-(\d+)\b`)
	episodeNumber = regexp.MustCompile(`(?i)episode\s+(\d+)`)
	dimmedMark    = regexp.MustCompile(`(?i)li\.mark-(\d+)\s*\{[^}]*opacity\s*:\s*([0-9]*\.?[0-9]+)`)
)

// CurrentEpisode returns the episode number the page marks as current, or 0.
// The marker is an inline style rule dimming one numbered list item, so it
// lives far from the episode list itself.
func CurrentEpisode(d markup.Document) int {
	for _, style := range d.FindAll("style") {
		for _, m := range dimmedMark.FindAllStringSubmatch(style.String(), -1) {
			opacity, err := strconv.ParseFloat(m[2], 64)
			if err != nil || opacity >= 1 {
				continue
			}
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}
	return 0
}

// Episodes parses the episode list of a series or watch page, ordered by
// ascending episode number. Entries are de-duplicated by URL. Entries that
// carry no number of their own are numbered after the highest explicit
// number, in document order, so they never collide with a real one.
func (e *Extractor) Episodes(d markup.Document) []hscrape.Episode {
	list := matching(d, quoted("class", "episodios")...)
	current := CurrentEpisode(d)

	episodes := []hscrape.Episode{}
	var unnumbered []int
	highest := 0
	seen := map[string]bool{}
	for _, li := range list.FindAll("li") {
		ep, numbered, ok := e.episode(li)
		if !ok || seen[ep.URL] {
			continue
		}
		seen[ep.URL] = true
		if !numbered {
			unnumbered = append(unnumbered, len(episodes))
		} else {
			highest = max(highest, ep.Number)
			ep.IsCurrent = current > 0 && ep.Number == current
		}
		episodes = append(episodes, ep)
	}
	for _, i := range unnumbered {
		highest++
		episodes[i].Number = highest
		if episodes[i].Title == "" {
			episodes[i].Title = "Episode " + strconv.Itoa(highest)
		}
	}
	slices.SortStableFunc(episodes, func(a, b hscrape.Episode) int {
		return cmp.Compare(a.Number, b.Number)
	})
	return episodes
}

// episode parses one list entry. numbered reports whether the entry carries
// its own number, from a mark-N class or an "Episode N" title.
func (e *Extractor) episode(li markup.Document) (ep hscrape.Episode, numbered, ok bool) {
	url := e.Resolve(li.Attr("a", "href"))
	if url == "" {
		return hscrape.Episode{}, false, false
	}

	var title string
	for _, a := range li.FindAll("a") {
		if title = a.TextContent(); title != "" {
			break
		}
	}

	number := 0
	if n, err := strconv.Atoi(submatch(markClass, li.OwnAttr("class"))); err == nil {
		number, numbered = n, true
	} else if n, err := strconv.Atoi(submatch(episodeNumber, title)); err == nil {
		number, numbered = n, true
	}
	if title == "" && numbered {
		title = "Episode " + strconv.Itoa(number)
	}

	return hscrape.Episode{
		Number:    number,
		Title:     title,
		URL:       url,
		Thumbnail: e.image(li),
		Date:      li.FirstClass("span", "date").TextContent(),
	}, numbered, true
}
