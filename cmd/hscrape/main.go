package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/extract"
	"github.com/fwojciec/hscrape/goquery"
	hshttp "github.com/fwojciec/hscrape/http"
	"github.com/fwojciec/hscrape/scrape"
	hsslog "github.com/fwojciec/hscrape/slog"
	"github.com/fwojciec/hscrape/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by the snapshot service.
	DB *sqlite.DB

	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	Fetcher hscrape.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hscrape"),
		kong.Description("Scrape the site into typed JSON records."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"db": defaultDBPath(), "origin": hscrape.DefaultOrigin},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hscrape --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.LogLevel)
	deps.Origin = strings.TrimRight(cli.Origin, "/")

	fetcher := m.Fetcher
	if fetcher == nil {
		opts := []hshttp.Option{
			hshttp.WithOrigin(deps.Origin),
			hshttp.WithTimeout(cli.Timeout),
		}
		if cli.UserAgent != "" {
			opts = append(opts, hshttp.WithUserAgent(cli.UserAgent))
		}
		fetcher = hshttp.NewFetcher(opts...)
	}
	fetcher = hsslog.NewLoggingFetcher(fetcher, deps.Logger)
	defer fetcher.Close()

	deps.Scraper = scrape.NewScraper(
		fetcher,
		extract.New(deps.Origin),
		goquery.NewChromeParser(deps.Origin),
	)

	if cmd == "archive" || cmd == "history" {
		if cli.DB != ":memory:" {
			_ = os.MkdirAll(filepath.Dir(cli.DB), 0755)
		}
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set HSCRAPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		deps.Snapshots = hsslog.NewLoggingSnapshotService(sqlite.NewSnapshotService(m.DB), deps.Logger)
	}

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hscrape.db"
	}
	return filepath.Join(home, ".hscrape", "hscrape.db")
}
