package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

var (
	favoritesCount = regexp.MustCompile(`class=["']list-count-\d+["']\s*>\s*([\d,.kKmM]+)\s*<`)
	viewsCount     = regexp.MustCompile(`class=["']views-count-\d+["']\s*>\s*([\d,.kKmM]+)\s*<`)
)

// Series assembles a series detail page. Each block of the page is read
// independently; a missing block leaves only its own fields empty.
func (e *Extractor) Series(d markup.Document, slug string) hscrape.SeriesDetail {
	header := matching(d, quoted("class", "sheader")...)

	detail := hscrape.SeriesDetail{
		ID:          pageID(d),
		Slug:        slug,
		URL:         e.canonical(d, "/series/"+slug+"/"),
		Title:       d.FirstClass("div", "data").InnerText("h1"),
		Poster:      e.poster(d),
		Censorship:  hscrape.CensorshipUnknown,
		DateCreated: firstText(d.FindByAttr("span", "itemprop", "dateCreated")),
		Genres:      e.tags(d.FirstClass("div", "sgeneros")),
		Rating:      d.FirstClass("span", "dt_rating_vgs").TextContent(),
		RatingCount: d.FirstClass("span", "rating-count").TextContent(),
		Favorites:   submatch(favoritesCount, d.String()),
		Views:       submatch(viewsCount, d.String()),
		Synopsis:    synopsis(d),
		Backdrops:   e.backdrops(d),
		Facts:       facts(d),
		Episodes:    e.Episodes(d),
		Related:     e.RelatedSeries(matching(d, quoted("id", "single_relacionados")...)),
	}
	if detail.Title == "" {
		detail.Title = d.InnerText("h1")
	}
	if !header.IsEmpty() {
		detail.Censorship = censorship(header)
		detail.Year = submatch(yearPattern, header.FirstClass("div", "buttonyear").TextContent())
	}
	if detail.Year == "" {
		detail.Year = submatch(yearPattern, detail.DateCreated)
	}
	return detail
}

// poster returns the main poster of a detail page.
func (e *Extractor) poster(d markup.Document) string {
	for _, img := range d.FindByAttr("img", "itemprop", "image") {
		if src := e.image(img); src != "" {
			return src
		}
	}
	for _, img := range d.FindAll("img") {
		if src := markup.PreferLazySource(img); strings.Contains(src, "/poster.") {
			return e.Resolve(src)
		}
	}
	return ""
}

// synopsis returns the first paragraph of the description block, which
// ends where the image gallery begins.
func synopsis(d markup.Document) string {
	block := markup.BoundToLandmark(d, `class="wp-content"`, `id='dt_galery'`, `id="dt_galery"`)
	return block.InnerText("p")
}

// backdrops returns the gallery images, or the page's og:image list when
// there is no gallery.
func (e *Extractor) backdrops(d markup.Document) []string {
	gallery := matching(d, quoted("id", "dt_galery")...)
	var srcs []string
	for _, img := range gallery.FindAll("img") {
		srcs = append(srcs, e.image(img))
	}
	if out := dedupe(srcs); len(out) > 0 {
		return out
	}
	for _, src := range metas(d, "property", "og:image") {
		srcs = append(srcs, e.Resolve(src))
	}
	return dedupe(srcs)
}

// facts reads the labelled key/value rows of the about box. Each row is a
// b.variante label followed by a span.valor value.
func facts(d markup.Document) hscrape.SeriesFacts {
	var f hscrape.SeriesFacts
	fields := map[string]*string{
		"alternative title": &f.AlternativeTitle,
		"first air date":    &f.FirstAirDate,
		"last air date":     &f.LastAirDate,
		"seasons":           &f.Seasons,
		"episodes":          &f.Episodes,
		"average duration":  &f.AverageDuration,
		"quality":           &f.Quality,
		"studio":            &f.Studio,
	}
	for _, row := range markup.SplitAt(d, `<b class="variante"`) {
		label := strings.ToLower(strings.TrimSuffix(row.InnerText("b"), ":"))
		field, ok := fields[label]
		if !ok || *field != "" {
			continue
		}
		*field = row.FirstClass("span", "valor").TextContent()
	}
	return f
}

func firstText(docs []markup.Document) string {
	for _, d := range docs {
		if t := d.TextContent(); t != "" {
			return t
		}
	}
	return ""
}
