package goquery_test

import (
	"testing"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromePage = `<!DOCTYPE html>
<html>
<body>
<header>
<div class="logo"><a href="https://watchhentai.net"><img src='https://watchhentai.net/logo.svg' width='123px' height='50px' title='Watch Hentai' alt='Watch Hentai'/></a></div>
<div class="menu">
<ul id="main_header" class="main-header">
	<li class="menu-item"><a href="https://watchhentai.net/" title="Home page"><i class="fas fa-home"></i> Home</a></li>
	<li class="menu-item"><a href="/trending/">Trending</a></li>
	<li class="genres menu-item"><a href="/series/" title="All series">Series</a>
		<ul class="sub-menu">
			<li class="menu-item"><a href="https://watchhentai.net/genre/romance/" title="Romance Hentai">Romance</a></li>
			<li class="menu-item"><a href="/genre/large-breasts/" title="Large Breasts Hentai">Large   Breasts</a></li>
		</ul>
	</li>
	<li class="menu-item"><a href="/empty/"><i class="fas fa-x"></i></a></li>
</ul>
</div>
</header>
<div class="content"><article id="post-1"><a href="/series/not-chrome/">Not chrome</a></article></div>
<aside class="sidebar">
<div id="popular" class="dtw_content dt_views_count">
	<article class="w_item_b" id="post-4411">
		<a href="https://watchhentai.net/series/alpha-id-01/" title="Alpha">
			<div class="image"><img data-src="https://watchhentai.net/uploads/alpha.jpg" src="data:image/gif;base64,R0lGOD" alt="Alpha" /></div>
			<div class="data"><h3>Alpha</h3><div class="wextra"><b>7.5</b><span class="year">2020</span></div></div>
		</a>
	</article>
	<article class="w_item_b" id="post-4412">
		<a href="/series/beta-id-01/"><div class="image"><img src="https://i0.wp.com/proxy?src=https%3A%2F%2Fcdn.example.com%2Fbeta.jpg" alt="Beta" /></div>
		<div class="data"><div class="wextra"><b>6.1</b><span class="year">2018</span></div></div></a>
	</article>
	<article class="w_item_b" id="post-4413"><div class="data"><h3>Unlinked</h3></div></article>
</div>
<div id="new" class="dtw_content">
	<article class="w_item_b" id="post-5001">
		<a href="/series/gamma-id-01/"><div class="image"><img data-src="/uploads/gamma.jpg" alt="Gamma" /></div>
		<div class="data"><h3>Gamma</h3><div class="wextra"><b>8.0</b><span class="year">2025</span></div></div></a>
	</article>
</div>
<div class="dt_mainmeta">
	<nav class="genres"><h2 class="widget-title">Genres</h2>
		<ul class="genres scrolling">
			<li class="cat-item cat-item-297"><a href="https://watchhentai.net/genre/3d/">3D</a> <i>40</i></li>
			<li class="cat-item cat-item-12"><a href="/genre/romance/">Romance</a> <i>1,02</i></li>
			<li class="cat-item"><a href="/about/">About</a></li>
		</ul>
	</nav>
	<nav class="releases"><h2>Release year</h2>
		<ul class="releases scrolling">
			<li><a href="https://watchhentai.net/release/2026/">2026</a></li>
			<li><a href="https://watchhentai.net/release/2025/">2025</a></li>
			<li><a href="https://watchhentai.net/tag/2024/">2024</a></li>
		</ul>
	</nav>
</div>
</aside>
<footer>
	<div class="lista-patners">Friends » <a href="https://hentaiworld.tv/" title="Hentai World" target="_blank">Hentai World</a> <a href="https://example.org/">Example</a></div>
	<ul id="menu-footer" class="menu">
		<li class="menu-item"><a href="https://watchhentai.net/contact/">Contact</a></li>
		<li class="menu-item"><a href="https://watchhentai.net/dmca/">DMCA</a></li>
	</ul>
	<div class="copy"><a href="/" title="Watch Hentai">WatchHentai.net</a> © 2025</div>
</footer>
</body>
</html>`

func TestChromeParser_ParseChrome(t *testing.T) {
	t.Parallel()

	parser := goquery.NewChromeParser("https://watchhentai.net/")

	t.Run("reads branding and footer", func(t *testing.T) {
		t.Parallel()

		c, err := parser.ParseChrome(chromePage)
		require.NoError(t, err)

		assert.Equal(t, hscrape.Logo{
			URL:     "https://watchhentai.net/logo.svg",
			Alt:     "Watch Hentai",
			HomeURL: "https://watchhentai.net",
		}, c.Logo)
		assert.Equal(t, []hscrape.Tag{
			{Name: "Hentai World", URL: "https://hentaiworld.tv/"},
			{Name: "Example", URL: "https://example.org/"},
		}, c.Partners)
		assert.Equal(t, []hscrape.Tag{
			{Name: "Contact", URL: "https://watchhentai.net/contact/"},
			{Name: "DMCA", URL: "https://watchhentai.net/dmca/"},
		}, c.Footer)
		assert.Equal(t, "WatchHentai.net © 2025", c.Copyright)
	})

	t.Run("reads top-level menu without submenu entries", func(t *testing.T) {
		t.Parallel()

		c, err := parser.ParseChrome(chromePage)
		require.NoError(t, err)

		assert.Equal(t, []hscrape.MenuItem{
			{Name: "Home", URL: "https://watchhentai.net/", Title: "Home page"},
			{Name: "Trending", URL: "https://watchhentai.net/trending/", Title: "Trending"},
			{Name: "Series", URL: "https://watchhentai.net/series/", Title: "All series"},
		}, c.Menu)
		assert.Equal(t, []hscrape.MenuGenre{
			{Name: "Romance", Slug: "romance", URL: "https://watchhentai.net/genre/romance/", Title: "Romance Hentai"},
			{Name: "Large Breasts", Slug: "large-breasts", URL: "https://watchhentai.net/genre/large-breasts/", Title: "Large Breasts Hentai"},
		}, c.MenuGenres)
	})

	t.Run("reads sidebar tabs", func(t *testing.T) {
		t.Parallel()

		c, err := parser.ParseChrome(chromePage)
		require.NoError(t, err)

		assert.Equal(t, []hscrape.SidebarItem{
			{ID: "4411", Title: "Alpha", URL: "https://watchhentai.net/series/alpha-id-01/", Poster: "https://watchhentai.net/uploads/alpha.jpg", Rating: "7.5", Year: "2020"},
			{ID: "4412", Title: "Beta", URL: "https://watchhentai.net/series/beta-id-01/", Poster: "https://cdn.example.com/beta.jpg", Rating: "6.1", Year: "2018"},
		}, c.Popular)
		assert.Equal(t, []hscrape.SidebarItem{
			{ID: "5001", Title: "Gamma", URL: "https://watchhentai.net/series/gamma-id-01/", Poster: "https://watchhentai.net/uploads/gamma.jpg", Rating: "8.0", Year: "2025"},
		}, c.NewSeries)
	})

	t.Run("reads genre and year lists", func(t *testing.T) {
		t.Parallel()

		c, err := parser.ParseChrome(chromePage)
		require.NoError(t, err)

		assert.Equal(t, []hscrape.GenreSummary{
			{Name: "3D", Slug: "3d", URL: "https://watchhentai.net/genre/3d/", Count: 40},
			{Name: "Romance", Slug: "romance", URL: "https://watchhentai.net/genre/romance/", Count: 0},
		}, c.Genres)
		assert.Equal(t, []string{"2026", "2025"}, c.Years)
	})

	t.Run("missing blocks yield empty lists", func(t *testing.T) {
		t.Parallel()

		c, err := parser.ParseChrome("<html><body><p>nothing here</p></body></html>")
		require.NoError(t, err)

		assert.Equal(t, hscrape.Logo{}, c.Logo)
		assert.NotNil(t, c.Menu)
		assert.Empty(t, c.Menu)
		assert.Empty(t, c.MenuGenres)
		assert.Empty(t, c.Popular)
		assert.Empty(t, c.NewSeries)
		assert.Empty(t, c.Genres)
		assert.NotNil(t, c.Years)
		assert.Empty(t, c.Years)
		assert.Empty(t, c.Partners)
		assert.Empty(t, c.Footer)
		assert.Empty(t, c.Copyright)
	})
}
