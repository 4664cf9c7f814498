package scrape_test

import (
	"testing"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/scrape"
	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind hscrape.PageKind
		arg  string
		page int
		want string
	}{
		{hscrape.PageHome, "", 1, "/"},
		{hscrape.PageTrending, "", 1, "/trending/"},
		{hscrape.PageTrending, "", 3, "/trending/page/3/"},
		{hscrape.PageTrending, "", 0, "/trending/"},
		{hscrape.PageGenre, "large-breasts", 1, "/genre/large-breasts/"},
		{hscrape.PageGenre, "large-breasts", 2, "/genre/large-breasts/page/2/"},
		{hscrape.PageUncensored, "", 4, "/genre/uncensored/page/4/"},
		{hscrape.PageRelease, "2024", 1, "/release/2024/"},
		{hscrape.PageRelease, "2024", 2, "/release/2024/page/2/"},
		{hscrape.PageSeriesIndex, "", 2, "/series/page/2/"},
		{hscrape.PageGenres, "", 1, "/series/"},
		{hscrape.PageVideos, "", 5, "/videos/page/5/"},
		{hscrape.PageSearch, "tsuki kagerou", 1, "/?s=tsuki+kagerou"},
		{hscrape.PageSearch, "a&b", 2, "/page/2/?s=a%26b"},
		{hscrape.PageCalendar, "", 3, "/calendar/"},
		{hscrape.PageSeries, "tsuki-kagerou-id-01", 1, "/series/tsuki-kagerou-id-01/"},
		{hscrape.PageWatch, "tsuki-kagerou-episode-1-id-01", 1, "/videos/tsuki-kagerou-episode-1-id-01/"},
		{hscrape.PageDownload, "tsuki-kagerou-episode-1-id-01", 1, "/download/tsuki-kagerou-episode-1-id-01/"},
		{hscrape.PageSeries, "a?b", 1, "/series/a%3Fb/"},
		{hscrape.PageChrome, "", 1, "/"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, scrape.Path(tt.kind, tt.arg, tt.page))
		})
	}
}
