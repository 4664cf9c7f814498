// Package goquery extracts the site's navigation chrome (menus, sidebar
// widgets and footer) using CSS selectors.
package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

var (
	genrePath   = regexp.MustCompile(`/genre/([^/?#]+)`)
	releasePath = regexp.MustCompile(`/release/(\d{4})/?`)
)

// Ensure ChromeParser implements hscrape.ChromeParser at compile time.
var _ hscrape.ChromeParser = (*ChromeParser)(nil)

// ChromeParser reads the shared page furniture from any full page of the site.
type ChromeParser struct {
	resolver markup.Resolver
}

// NewChromeParser returns a ChromeParser resolving links against origin.
func NewChromeParser(origin string) *ChromeParser {
	return &ChromeParser{resolver: markup.NewResolver(origin)}
}

// ParseChrome extracts logo, menus, sidebar widgets, genre and year lists,
// and footer links. Missing blocks yield empty lists.
func (p *ChromeParser) ParseChrome(html string) (*hscrape.SiteChrome, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, hscrape.Errorf(hscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	c := &hscrape.SiteChrome{
		Menu:       []hscrape.MenuItem{},
		MenuGenres: []hscrape.MenuGenre{},
		Popular:    p.sidebar(doc.Find("#popular")),
		NewSeries:  p.sidebar(doc.Find("#new")),
		Genres:     []hscrape.GenreSummary{},
		Years:      []string{},
		Partners:   links(doc.Find("div.lista-patners a[href]")),
		Footer:     links(doc.Find("#menu-footer a[href]")),
		Copyright:  text(doc.Find("div.copy").First()),
	}

	logo := doc.Find("div.logo").First()
	c.Logo = hscrape.Logo{
		URL:     attr(logo.Find("img"), "src"),
		Alt:     attr(logo.Find("img"), "alt"),
		HomeURL: attr(logo.Find("a"), "href"),
	}

	header := doc.Find("#main_header").First()
	header.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		a := li.ChildrenFiltered("a").First()
		name := text(a)
		if name == "" {
			return
		}
		title := attr(a, "title")
		if title == "" {
			title = name
		}
		c.Menu = append(c.Menu, hscrape.MenuItem{
			Name:  name,
			URL:   p.resolver.Resolve(attr(a, "href")),
			Title: title,
		})
	})
	header.Find("ul.sub-menu a[href]").Each(func(_ int, a *goquery.Selection) {
		href := attr(a, "href")
		c.MenuGenres = append(c.MenuGenres, hscrape.MenuGenre{
			Name:  text(a),
			Slug:  slugOf(href),
			URL:   p.resolver.Resolve(href),
			Title: attr(a, "title"),
		})
	})

	doc.Find("nav.genres li").Each(func(_ int, li *goquery.Selection) {
		a := li.Find("a[href]").First()
		href := attr(a, "href")
		slug := slugOf(href)
		if slug == "" {
			return
		}
		count, _ := strconv.Atoi(text(li.Find("i").First()))
		c.Genres = append(c.Genres, hscrape.GenreSummary{
			Name:  text(a),
			Slug:  slug,
			URL:   p.resolver.Resolve(href),
			Count: count,
		})
	})

	doc.Find("nav.releases a[href]").Each(func(_ int, a *goquery.Selection) {
		if m := releasePath.FindStringSubmatch(attr(a, "href")); m != nil {
			c.Years = append(c.Years, m[1])
		}
	})

	return c, nil
}

// sidebar reads the compact series cards of a sidebar tab.
func (p *ChromeParser) sidebar(tab *goquery.Selection) []hscrape.SidebarItem {
	items := []hscrape.SidebarItem{}
	tab.Find("article").Each(func(_ int, art *goquery.Selection) {
		href := attr(art.Find("a[href]").First(), "href")
		if href == "" {
			return
		}
		img := art.Find("img").First()
		poster := attr(img, "data-src")
		if poster == "" {
			poster = attr(img, "src")
		}
		title := text(art.Find("h3").First())
		if title == "" {
			title = attr(img, "alt")
		}
		id, _ := art.Attr("id")
		items = append(items, hscrape.SidebarItem{
			ID:     strings.TrimPrefix(id, "post-"),
			Title:  title,
			URL:    p.resolver.Resolve(href),
			Poster: p.resolver.Resolve(markup.UnwrapProxiedImage(poster)),
			Rating: text(art.Find("b").First()),
			Year:   text(art.Find("span.year, span").First()),
		})
	})
	return items
}

func links(sel *goquery.Selection) []hscrape.Tag {
	tags := []hscrape.Tag{}
	sel.Each(func(_ int, a *goquery.Selection) {
		name := text(a)
		if name == "" {
			return
		}
		tags = append(tags, hscrape.Tag{Name: name, URL: attr(a, "href")})
	})
	return tags
}

func slugOf(href string) string {
	m := genrePath.FindStringSubmatch(href)
	if m == nil {
		return ""
	}
	return m[1]
}

func attr(sel *goquery.Selection, name string) string {
	v, _ := sel.First().Attr(name)
	return strings.TrimSpace(v)
}

func text(sel *goquery.Selection) string {
	return markup.CollapseSpace(sel.Text())
}
