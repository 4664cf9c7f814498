package extract_test

import (
	"testing"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Download(t *testing.T) {
	t.Parallel()

	got := newExtractor().Download(fixture(t, "download.html"), "tsuki-kagerou-episode-2-id-01")

	assert.Equal(t, "7001", got.ID)
	assert.Equal(t, "Tsuki Kagerou – Episode 2", got.Title)
	assert.Equal(t, "Tsuki Kagerou", got.SeriesTitle)
	assert.Equal(t, "Episode 2", got.EpisodeTitle)
	assert.Equal(t, "https://watchhentai.net/download/tsuki-kagerou-episode-2-id-01/", got.DownloadURL)
	assert.Equal(t, "https://watchhentai.net/videos/tsuki-kagerou-episode-2-id-01/", got.WatchURL)
	assert.Equal(t, "https://watchhentai.net/uploads/2024/tsuki/1.jpg", got.Thumbnail)
	assert.Equal(t, []string{
		"https://watchhentai.net/uploads/2024/tsuki/2-1.jpg",
		"https://watchhentai.net/uploads/2024/tsuki/2-2.jpg",
	}, got.Previews)
	assert.Equal(t, []hscrape.DownloadSource{
		{URL: "https://hstorage.xyz/files/T/tsuki/2/tsuki-2_1080p.mp4", Label: "1080p", Host: "hstorage.xyz"},
		{URL: "https://mirror.example.org/dl/2", Label: "720p", Host: "mirror.example.org"},
	}, got.Sources)
	assert.Equal(t, "https://watchhentai.net/series/tsuki-kagerou-id-01/", got.SeriesURL)

	require.NotNil(t, got.PrevEpisode)
	require.NotNil(t, got.NextEpisode)
	assert.Equal(t, "https://watchhentai.net/download/tsuki-kagerou-episode-1-id-01/", got.PrevEpisode.URL)
	assert.Equal(t, "Episode 3", got.NextEpisode.Title)

	assert.Equal(t, "15", got.ShareCount)
	assert.Equal(t, "2024-07-01T10:00:00+00:00", got.DatePublished)
	assert.Equal(t, "2024-07-02T11:00:00+00:00", got.DateModified)
	assert.Equal(t, "Download Tsuki Kagerou Episode 2.", got.Description)
	require.Len(t, got.Related, 1)
	assert.Equal(t, "Other Show", got.Related[0].Title)
}

func TestExtractor_Download_LinkedData(t *testing.T) {
	t.Parallel()

	t.Run("reads fields out of a block that is not valid JSON", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">{"@type":"WebPage","datePublished":"2024-01-01","description":"Broken block",}</script>`

		got := newExtractor().Download(markup.New(html), "x")

		assert.Equal(t, "2024-01-01", got.DatePublished)
		assert.Empty(t, got.DateModified)
		assert.Equal(t, "Broken block", got.Description)
	})

	t.Run("falls back to the meta description", func(t *testing.T) {
		t.Parallel()

		html := `<meta name="description" content="From meta.">`

		got := newExtractor().Download(markup.New(html), "x")

		assert.Equal(t, "From meta.", got.Description)
	})
}
