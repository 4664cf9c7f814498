package scrape_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/extract"
	"github.com/fwojciec/hscrape/mock"
	"github.com/fwojciec/hscrape/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingHTML = `<h1 class="heading-archive">Trending</h1>
<div class="items full">
<article id="post-1" class="item tvshows"><h3><a href="/series/a-id-01/">A</a></h3></article>
<article id="post-2" class="item tvshows"><h3><a href="/series/b-id-01/">B</a></h3></article>
</div>
<div class="pagination"><span>Page 2 of 3</span></div>`

const watchHTML = `<body class="postid-9">
<iframe id="search_iframe" src="https://watchhentai.net/jwplayer/?source=https%3A%2F%2Fcdn.example.com%2Fx-1_720p.mp4&amp;id=9&amp;type=mp4"></iframe>
<h1>X – Episode 1</h1>
</body>`

const playerHTML = `<script>jwplayer("p").setup({sources: [{"file":"https://cdn.example.com/x-1_1080p.mp4","label":"1080p"},{"file":"https://cdn.example.com/x-1_720p.mp4","label":"720p"}]});</script>`

// fetcherFor returns a fetcher serving pages by path and recording every
// requested path.
func fetcherFor(pages map[string]string, requested *[]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, path string) (string, error) {
			if requested != nil {
				*requested = append(*requested, path)
			}
			html, ok := pages[path]
			if !ok {
				return "", hscrape.Errorf(hscrape.EUNAVAILABLE, "HTTP 404 for %s", path)
			}
			return html, nil
		},
	}
}

func newScraper(f hscrape.Fetcher) *scrape.Scraper {
	return scrape.NewScraper(f, extract.New(hscrape.DefaultOrigin), &mock.ChromeParser{})
}

func TestScraper_Listing(t *testing.T) {
	t.Parallel()

	t.Run("fetches the paged path and extracts cards", func(t *testing.T) {
		t.Parallel()

		var requested []string
		s := newScraper(fetcherFor(map[string]string{"/trending/page/2/": listingHTML}, &requested))

		got, err := s.Trending(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"/trending/page/2/"}, requested)
		assert.Equal(t, "Trending", got.Name)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "https://watchhentai.net/series/a-id-01/", got.Items[0].URL)
		assert.Equal(t, 2, got.Pagination.CurrentPage)
		assert.Equal(t, 3, got.Pagination.TotalPages)
	})

	t.Run("clamps pages below one", func(t *testing.T) {
		t.Parallel()

		var requested []string
		s := newScraper(fetcherFor(map[string]string{"/series/": ""}, &requested))

		got, err := s.SeriesIndex(context.Background(), -3)

		require.NoError(t, err)
		assert.Equal(t, []string{"/series/"}, requested)
		assert.Equal(t, 1, got.Pagination.CurrentPage)
		assert.Empty(t, got.Items)
	})

	t.Run("names a genre listing by slug when the page has no heading", func(t *testing.T) {
		t.Parallel()

		s := newScraper(fetcherFor(map[string]string{"/genre/romance/": ""}, nil))

		got, err := s.Genre(context.Background(), " /romance/ ", 1)

		require.NoError(t, err)
		assert.Equal(t, "romance", got.Name)
		assert.Equal(t, "romance", got.Slug)
	})

	t.Run("rejects an empty genre slug", func(t *testing.T) {
		t.Parallel()

		s := newScraper(&mock.Fetcher{})

		_, err := s.Genre(context.Background(), "  ", 1)

		assert.Equal(t, hscrape.EINVALID, hscrape.ErrorCode(err))
	})

	t.Run("rejects a year without four digits", func(t *testing.T) {
		t.Parallel()

		s := newScraper(&mock.Fetcher{})

		for _, year := range []string{"", "24", "20x4", "20245"} {
			_, err := s.Release(context.Background(), year, 1)
			assert.Equal(t, hscrape.EINVALID, hscrape.ErrorCode(err), year)
		}
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		s := newScraper(fetcherFor(nil, nil))

		_, err := s.Uncensored(context.Background(), 1)

		assert.Equal(t, hscrape.EUNAVAILABLE, hscrape.ErrorCode(err))
	})
}

func TestScraper_Search(t *testing.T) {
	t.Parallel()

	t.Run("fetches the query path", func(t *testing.T) {
		t.Parallel()

		var requested []string
		s := newScraper(fetcherFor(map[string]string{"/page/2/?s=tsuki+kagerou": ""}, &requested))

		got, err := s.Search(context.Background(), " tsuki kagerou ", 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"/page/2/?s=tsuki+kagerou"}, requested)
		assert.Equal(t, "tsuki kagerou", got.Query)
		assert.Empty(t, got.Results)
	})

	t.Run("rejects an empty query", func(t *testing.T) {
		t.Parallel()

		s := newScraper(&mock.Fetcher{})

		_, err := s.Search(context.Background(), " ", 1)

		assert.Equal(t, hscrape.EINVALID, hscrape.ErrorCode(err))
	})
}

func TestScraper_Watch(t *testing.T) {
	t.Parallel()

	const playerURL = "https://watchhentai.net/jwplayer/?source=https%3A%2F%2Fcdn.example.com%2Fx-1_720p.mp4&id=9&type=mp4"

	t.Run("merges the player document sources", func(t *testing.T) {
		t.Parallel()

		var requested []string
		s := newScraper(fetcherFor(map[string]string{
			"/videos/x-episode-1-id-01/": watchHTML,
			playerURL:                    playerHTML,
		}, &requested))

		got, err := s.Watch(context.Background(), "x-episode-1-id-01")

		require.NoError(t, err)
		assert.Equal(t, []string{"/videos/x-episode-1-id-01/", playerURL}, requested)
		assert.Equal(t, "X", got.SeriesTitle)
		require.Len(t, got.Player.Sources, 2)
		assert.Equal(t, "1080p", got.Player.Sources[0].Label)
		assert.Equal(t, "https://cdn.example.com/x-1_1080p.mp4", got.Player.Src)
		assert.Equal(t, "9", got.Player.PostID)
	})

	t.Run("falls back to the player URL source when the player fails", func(t *testing.T) {
		t.Parallel()

		s := newScraper(fetcherFor(map[string]string{
			"/videos/x-episode-1-id-01/": watchHTML,
		}, nil))

		got, err := s.Watch(context.Background(), "x-episode-1-id-01")

		require.NoError(t, err)
		assert.Equal(t, []hscrape.VideoSource{
			{Src: "https://cdn.example.com/x-1_720p.mp4", Type: "video/mp4", Label: "720p"},
		}, got.Player.Sources)
		assert.Equal(t, "https://cdn.example.com/x-1_720p.mp4", got.Player.Src)
	})

	t.Run("skips the player fetch when the page has no player", func(t *testing.T) {
		t.Parallel()

		var requested []string
		s := newScraper(fetcherFor(map[string]string{"/videos/x-id-01/": "<h1>X</h1>"}, &requested))

		got, err := s.Watch(context.Background(), "x-id-01")

		require.NoError(t, err)
		assert.Len(t, requested, 1)
		assert.Empty(t, got.Player.Sources)
	})

	t.Run("stops when the context is canceled during the player fetch", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		s := newScraper(&mock.Fetcher{
			FetchFn: func(ctx context.Context, path string) (string, error) {
				if path == playerURL {
					cancel()
					return "", ctx.Err()
				}
				return watchHTML, nil
			},
		})

		_, err := s.Watch(ctx, "x-episode-1-id-01")

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects an empty slug", func(t *testing.T) {
		t.Parallel()

		s := newScraper(&mock.Fetcher{})

		_, err := s.Watch(context.Background(), "")

		assert.Equal(t, hscrape.EINVALID, hscrape.ErrorCode(err))
	})
}

func TestScraper_Details(t *testing.T) {
	t.Parallel()

	t.Run("series", func(t *testing.T) {
		t.Parallel()

		s := newScraper(fetcherFor(map[string]string{"/series/x-id-01/": `<div class="data"><h1>X</h1></div>`}, nil))

		got, err := s.Series(context.Background(), "x-id-01")

		require.NoError(t, err)
		assert.Equal(t, "X", got.Title)
		assert.Equal(t, "x-id-01", got.Slug)
	})

	t.Run("download", func(t *testing.T) {
		t.Parallel()

		s := newScraper(fetcherFor(map[string]string{"/download/x-episode-1-id-01/": `<h1>X – Episode 1 Download</h1>`}, nil))

		got, err := s.Download(context.Background(), "x-episode-1-id-01")

		require.NoError(t, err)
		assert.Equal(t, "Episode 1", got.EpisodeTitle)
	})

	t.Run("calendar", func(t *testing.T) {
		t.Parallel()

		var requested []string
		s := newScraper(fetcherFor(map[string]string{"/calendar/": ""}, &requested))

		got, err := s.Calendar(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"/calendar/"}, requested)
		assert.Empty(t, got.Months)
	})

	t.Run("genres come from the series index", func(t *testing.T) {
		t.Parallel()

		html := `<nav class="genres"><ul><li class="cat-item"><a href="/genre/3d/">3D</a> <i>40</i></li></ul></nav>`
		s := newScraper(fetcherFor(map[string]string{"/series/": html}, nil))

		got, err := s.Genres(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "3d", got[0].Slug)
	})
}

func TestScraper_Chrome(t *testing.T) {
	t.Parallel()

	t.Run("parses the landing page", func(t *testing.T) {
		t.Parallel()

		var parsed string
		s := scrape.NewScraper(
			fetcherFor(map[string]string{"/": "<html>home</html>"}, nil),
			extract.New(hscrape.DefaultOrigin),
			&mock.ChromeParser{
				ParseChromeFn: func(html string) (*hscrape.SiteChrome, error) {
					parsed = html
					return &hscrape.SiteChrome{Copyright: "© 2025"}, nil
				},
			},
		)

		got, err := s.Chrome(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "<html>home</html>", parsed)
		assert.Equal(t, "© 2025", got.Copyright)
	})

	t.Run("returns parser errors", func(t *testing.T) {
		t.Parallel()

		parseErr := errors.New("broken")
		s := scrape.NewScraper(
			fetcherFor(map[string]string{"/": ""}, nil),
			extract.New(hscrape.DefaultOrigin),
			&mock.ChromeParser{
				ParseChromeFn: func(string) (*hscrape.SiteChrome, error) { return nil, parseErr },
			},
		)

		_, err := s.Chrome(context.Background())

		assert.ErrorIs(t, err, parseErr)
	})
}
