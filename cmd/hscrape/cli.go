package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/hscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Origin    string
	Scraper   hscrape.Scraper
	Snapshots hscrape.SnapshotService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Origin    string        `default:"${origin}" env:"HSCRAPE_ORIGIN" help:"Site origin paths are resolved against"`
	Timeout   time.Duration `default:"10s" env:"HSCRAPE_TIMEOUT" help:"HTTP request timeout"`
	UserAgent string        `name:"user-agent" env:"HSCRAPE_USER_AGENT" help:"Override the User-Agent header"`
	DB        string        `name:"db" default:"${db}" env:"HSCRAPE_DB" help:"Snapshot database path"`
	LogLevel  string        `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"HSCRAPE_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`

	Serve    ServeCmd    `cmd:"" help:"Serve the JSON API"`
	Listing  ListingCmd  `cmd:"" help:"Print a listing page as JSON"`
	Series   SeriesCmd   `cmd:"" help:"Print a series page as JSON"`
	Watch    WatchCmd    `cmd:"" help:"Print an episode page with its video sources as JSON"`
	Download DownloadCmd `cmd:"" help:"Print an episode's download page as JSON"`
	Genres   GenresCmd   `cmd:"" help:"List genres with series counts"`
	Search   SearchCmd   `cmd:"" help:"Search series by title"`
	Archive  ArchiveCmd  `cmd:"" help:"Scrape pages and record them as snapshots"`
	History  HistoryCmd  `cmd:"" help:"List, show, export or prune recorded snapshots"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8787" env:"HSCRAPE_ADDR" help:"Listen address"`
}

// ListingCmd is the "listing" subcommand.
type ListingCmd struct {
	Kind string `arg:"" enum:"home,trending,genre,uncensored,release,series-index,videos,calendar,chrome" help:"Page kind (home, trending, genre, uncensored, release, series-index, videos, calendar, chrome)"`
	Arg  string `arg:"" optional:"" help:"Genre slug or release year"`
	Page int    `short:"p" default:"1" help:"Page number"`
}

// SeriesCmd is the "series" subcommand.
type SeriesCmd struct {
	Slug string `arg:"" help:"Series slug"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Slug string `arg:"" help:"Episode slug"`
}

// DownloadCmd is the "download" subcommand.
type DownloadCmd struct {
	Slug string `arg:"" help:"Episode slug"`
}

// GenresCmd is the "genres" subcommand.
type GenresCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Page  int    `short:"p" default:"1" help:"Page number"`
}

// ArchiveCmd is the "archive" subcommand.
type ArchiveCmd struct {
	Kind        string `arg:"" enum:"home,trending,genre,uncensored,release,series-index,videos,search,genres,calendar,chrome,series,watch,download" help:"Page kind to archive"`
	Arg         string `arg:"" optional:"" help:"Slug, year or query the kind needs"`
	Pages       int    `default:"0" help:"Pages to archive (0 archives every reported page)"`
	MaxPages    int    `name:"max-pages" default:"50" help:"Upper bound on pages per run"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Kind   string        `help:"Only snapshots of this page kind"`
	Path   string        `help:"Only snapshots of this site path"`
	Limit  int           `short:"n" default:"20" help:"Maximum snapshots to list"`
	Show   string        `help:"Print the payload of the snapshot with this ID"`
	Prune  time.Duration `help:"Delete snapshots older than this age instead of listing"`
	Export string        `type:"path" help:"Write the newest snapshot of each page kind and path as JSON files under this directory"`
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fail reports err on stderr and returns it.
func fail(deps *Dependencies, err error) error {
	msg := hscrape.ErrorMessage(err)
	if hscrape.ErrorCode(err) == hscrape.EINTERNAL {
		msg = err.Error()
	}
	fmt.Fprintf(deps.Stderr, "error: %s\n", msg)
	return err
}
