package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/scrape"
)

// Routes lists the API routes reported for unknown paths.
var Routes = []string{
	"GET /api/home",
	"GET /api/trending",
	"GET /api/trending/:page",
	"GET /api/videos",
	"GET /api/videos/:page",
	"GET /api/uncensored",
	"GET /api/uncensored/:page",
	"GET /api/release/:year",
	"GET /api/release/:year/:page",
	"GET /api/search?q=keyword",
	"GET /api/search/:page?q=keyword",
	"GET /api/calendar",
	"GET /api/genres",
	"GET /api/genre/:slug",
	"GET /api/genre/:slug/:page",
	"GET /api/series",
	"GET /api/series/:page",
	"GET /api/series/:slug",
	"GET /api/watch?slug=episode-slug",
	"GET /api/watch/:slug",
	"GET /api/download/:slug",
	"GET /api/extra",
	"GET /api/health",
}

var numeric = regexp.MustCompile(`^\d+$`)

// Meta describes where and when a payload was scraped.
type Meta struct {
	ScrapedAt time.Time `json:"scrapedAt"`
	Source    string    `json:"source"`
}

// Envelope is the uniform shape of every API response.
type Envelope struct {
	Success   bool     `json:"success"`
	Data      any      `json:"data,omitempty"`
	Error     string   `json:"error,omitempty"`
	Meta      *Meta    `json:"meta,omitempty"`
	Available []string `json:"available,omitempty"`
}

// Server republishes scraped pages as a JSON API.
type Server struct {
	Scraper hscrape.Scraper
	Origin  string
	Logger  *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	mux *http.ServeMux
}

// NewServer returns a Server that scrapes through scraper and reports
// sources relative to origin.
func NewServer(scraper hscrape.Scraper, origin string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		Scraper: scraper,
		Origin:  strings.TrimRight(origin, "/"),
		Logger:  logger,
		Now:     time.Now,
		mux:     http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	listing := func(kind hscrape.PageKind, fn func(ctx context.Context, page int) (any, error)) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			page := pageParam(r)
			s.respond(w, r, scrape.Path(kind, "", page), func(ctx context.Context) (any, error) {
				return fn(ctx, page)
			})
		}
	}

	trending := listing(hscrape.PageTrending, func(ctx context.Context, page int) (any, error) {
		return s.Scraper.Trending(ctx, page)
	})
	videos := listing(hscrape.PageVideos, func(ctx context.Context, page int) (any, error) {
		return s.Scraper.Videos(ctx, page)
	})
	uncensored := listing(hscrape.PageUncensored, func(ctx context.Context, page int) (any, error) {
		return s.Scraper.Uncensored(ctx, page)
	})

	s.mux.HandleFunc("GET /api/home", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, r, scrape.Path(hscrape.PageHome, "", 1), func(ctx context.Context) (any, error) {
			return s.Scraper.Home(ctx)
		})
	})
	s.mux.HandleFunc("GET /api/trending", trending)
	s.mux.HandleFunc("GET /api/trending/{page}", trending)
	s.mux.HandleFunc("GET /api/videos", videos)
	s.mux.HandleFunc("GET /api/videos/{page}", videos)
	s.mux.HandleFunc("GET /api/uncensored", uncensored)
	s.mux.HandleFunc("GET /api/uncensored/{page}", uncensored)

	release := func(w http.ResponseWriter, r *http.Request) {
		year, page := r.PathValue("year"), pageParam(r)
		s.respond(w, r, scrape.Path(hscrape.PageRelease, year, page), func(ctx context.Context) (any, error) {
			return s.Scraper.Release(ctx, year, page)
		})
	}
	s.mux.HandleFunc("GET /api/release/{year}", release)
	s.mux.HandleFunc("GET /api/release/{year}/{page}", release)

	genre := func(w http.ResponseWriter, r *http.Request) {
		slug, page := r.PathValue("slug"), pageParam(r)
		s.respond(w, r, scrape.Path(hscrape.PageGenre, slug, page), func(ctx context.Context) (any, error) {
			return s.Scraper.Genre(ctx, slug, page)
		})
	}
	s.mux.HandleFunc("GET /api/genre/{slug}", genre)
	s.mux.HandleFunc("GET /api/genre/{slug}/{page}", genre)

	search := func(w http.ResponseWriter, r *http.Request) {
		query, page := r.URL.Query().Get("q"), pageParam(r)
		s.respond(w, r, scrape.Path(hscrape.PageSearch, query, page), func(ctx context.Context) (any, error) {
			return s.Scraper.Search(ctx, query, page)
		})
	}
	s.mux.HandleFunc("GET /api/search", search)
	s.mux.HandleFunc("GET /api/search/{page}", search)

	s.mux.HandleFunc("GET /api/calendar", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, r, scrape.Path(hscrape.PageCalendar, "", 1), func(ctx context.Context) (any, error) {
			return s.Scraper.Calendar(ctx)
		})
	})
	s.mux.HandleFunc("GET /api/genres", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, r, scrape.Path(hscrape.PageGenres, "", 1), func(ctx context.Context) (any, error) {
			return s.Scraper.Genres(ctx)
		})
	})

	// A numeric segment selects a page of the index, anything else a series.
	series := func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")
		if slug != "" && !numeric.MatchString(slug) {
			s.respond(w, r, scrape.Path(hscrape.PageSeries, slug, 1), func(ctx context.Context) (any, error) {
				return s.Scraper.Series(ctx, slug)
			})
			return
		}
		page := pageParam(r)
		s.respond(w, r, scrape.Path(hscrape.PageSeriesIndex, "", page), func(ctx context.Context) (any, error) {
			return s.Scraper.SeriesIndex(ctx, page)
		})
	}
	s.mux.HandleFunc("GET /api/series", series)
	s.mux.HandleFunc("GET /api/series/{slug}", series)

	watch := func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")
		if slug == "" {
			slug = r.URL.Query().Get("slug")
		}
		s.respond(w, r, scrape.Path(hscrape.PageWatch, slug, 1), func(ctx context.Context) (any, error) {
			return s.Scraper.Watch(ctx, slug)
		})
	}
	s.mux.HandleFunc("GET /api/watch", watch)
	s.mux.HandleFunc("GET /api/watch/{slug}", watch)

	download := func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")
		if slug == "" {
			slug = r.URL.Query().Get("slug")
		}
		s.respond(w, r, scrape.Path(hscrape.PageDownload, slug, 1), func(ctx context.Context) (any, error) {
			return s.Scraper.Download(ctx, slug)
		})
	}
	s.mux.HandleFunc("GET /api/download", download)
	s.mux.HandleFunc("GET /api/download/{slug}", download)

	s.mux.HandleFunc("GET /api/extra", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, r, scrape.Path(hscrape.PageChrome, "", 1), func(ctx context.Context) (any, error) {
			return s.Scraper.Chrome(ctx)
		})
	})

	s.mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, r, http.StatusOK, map[string]any{
			"success":   true,
			"status":    "ok",
			"timestamp": s.Now().UTC(),
		})
	})

	s.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, r, http.StatusNotFound, Envelope{
			Error:     "Route not found",
			Available: Routes,
		})
	})
}

// ServeHTTP applies CORS headers and request logging around the routes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	h := rec.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		rec.WriteHeader(http.StatusNoContent)
	} else {
		s.mux.ServeHTTP(rec, r)
	}

	s.Logger.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start),
	)
}

// respond runs fn and writes its result in the envelope. Invalid input is
// reported as 400; any other failure means the source could not be scraped.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, path string, fn func(ctx context.Context) (any, error)) {
	source := s.Origin + path
	data, err := fn(r.Context())
	if err != nil {
		if hscrape.ErrorCode(err) == hscrape.EINVALID {
			s.writeJSON(w, r, http.StatusBadRequest, Envelope{Error: hscrape.ErrorMessage(err)})
			return
		}
		s.Logger.Error("scrape failed", "source", source, "error", err)
		s.writeJSON(w, r, http.StatusBadGateway, Envelope{Error: "could not retrieve " + source})
		return
	}

	s.writeJSON(w, r, http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Meta:    &Meta{ScrapedAt: s.Now().UTC(), Source: source},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	enc := json.NewEncoder(w)
	if _, ok := r.URL.Query()["pretty"]; ok {
		enc.SetIndent("", "  ")
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := enc.Encode(v); err != nil {
		s.Logger.Error("write response", "error", err)
	}
}

// pageParam reads the page from the path or the page query parameter.
// Anything that is not a positive number means the first page.
func pageParam(r *http.Request) int {
	raw := r.PathValue("page")
	if raw == "" {
		raw = r.URL.Query().Get("page")
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
