package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

var (
	viewsLabel  = regexp.MustCompile(`fa-eye[^<]*</i>\s*([\d.,]+\s*[kKmM]?)`)
	postedLabel = regexp.MustCompile(`fa-clock[^<]*</i>\s*([^<]+)`)
	subLabel    = regexp.MustCompile(`^[A-Z]{2,}$`)
)

// ListingCard parses one series card. It reports false when the card has
// no series link.
func (e *Extractor) ListingCard(art markup.Document) (hscrape.ListingCard, bool) {
	url := e.link(art, seriesLink)
	if url == "" {
		return hscrape.ListingCard{}, false
	}
	title := art.InnerText("h3")
	if title == "" {
		title = art.Attr("img", "alt")
	}
	return hscrape.ListingCard{
		ID:         fragmentID(art),
		Title:      title,
		URL:        url,
		Poster:     e.image(art),
		Year:       submatch(yearPattern, art.FirstClass("div", "buttonyear").TextContent()),
		Censorship: censorship(art),
	}, true
}

// EpisodeCard parses one episode card. It reports false when the card has
// no episode link.
func (e *Extractor) EpisodeCard(art markup.Document) (hscrape.EpisodeCard, bool) {
	url := e.link(art, videosLink)
	if url == "" {
		return hscrape.EpisodeCard{}, false
	}

	series := art.FirstClass("span", "serie").TextContent()
	episode := art.InnerText("h3")
	var title string
	switch {
	case series != "" && episode != "":
		title = series + " – " + episode
	case series != "" || episode != "":
		title = series + episode
	default:
		title = art.FirstClass("span", "title").TextContent()
		if title == "" {
			title = art.Attr("img", "alt")
		}
	}

	card := hscrape.EpisodeCard{
		ID:           fragmentID(art),
		Title:        title,
		Series:       series,
		EpisodeTitle: episode,
		URL:          url,
		Thumbnail:    e.image(art),
		Views:        strings.TrimSpace(submatch(viewsLabel, art.String())),
		Published:    markup.CollapseSpace(markup.DecodeEntities(submatch(postedLabel, art.String()))),
		Censorship:   censorship(art),
	}
	card.ViewCount = markup.ParseAbbreviatedCount(card.Views)
	if t, ok := markup.ParseRelativeTimestamp(card.Published, e.now()); ok {
		card.PublishedAt = &t
	}
	if label := strings.ToUpper(art.FirstClass("div", "buttonextra").InnerText("span")); subLabel.MatchString(label) {
		card.SubType = label
	}
	return card, true
}

// ListingCards parses every series card in d, skipping unusable ones.
func (e *Extractor) ListingCards(d markup.Document) []hscrape.ListingCard {
	cards := []hscrape.ListingCard{}
	for _, art := range d.FindAllFlat("article") {
		if !art.HasClass("tvshows") {
			continue
		}
		if card, ok := e.ListingCard(art); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// EpisodeCards parses every episode card in d, skipping unusable ones.
func (e *Extractor) EpisodeCards(d markup.Document) []hscrape.EpisodeCard {
	cards := []hscrape.EpisodeCard{}
	for _, art := range d.FindAllFlat("article") {
		if card, ok := e.EpisodeCard(art); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// SearchResult parses one search hit. It reports false when the hit has
// no link.
func (e *Extractor) SearchResult(item markup.Document) (hscrape.SearchResult, bool) {
	title := item.FirstClass("div", "title")
	url := e.Resolve(title.Attr("a", "href"))
	if url == "" {
		return hscrape.SearchResult{}, false
	}
	return hscrape.SearchResult{
		Title:       title.InnerText("a"),
		URL:         url,
		Poster:      e.image(item),
		Year:        submatch(yearPattern, item.FirstClass("span", "year").TextContent()),
		Description: item.FirstClass("div", "contenido").InnerText("p"),
	}, true
}

// RelatedSeries parses the related-series strip of a detail page.
func (e *Extractor) RelatedSeries(d markup.Document) []hscrape.RelatedSeries {
	related := []hscrape.RelatedSeries{}
	for _, art := range d.FindAllFlat("article") {
		url := e.link(art, seriesLink)
		if url == "" {
			url = e.Resolve(art.Attr("a", "href"))
		}
		if url == "" {
			continue
		}
		title := art.Attr("img", "alt")
		if title == "" {
			title = art.Attr("img", "title")
		}
		if title == "" {
			title = art.Attr("a", "title")
		}
		related = append(related, hscrape.RelatedSeries{
			Title:  markup.CollapseSpace(title),
			URL:    url,
			Poster: e.image(art),
		})
	}
	return related
}
