// Package http provides the HTTP side of hscrape: a Fetcher that retrieves
// pages from the site and a Server that republishes them as a JSON API.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements hscrape.Fetcher at compile time.
var _ hscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from the site using plain HTTP requests.
// Paths are resolved against the configured origin.
type Fetcher struct {
	client   *http.Client
	timeout  time.Duration
	resolver markup.Resolver
	header   http.Header
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithOrigin sets the origin relative paths are resolved against.
// Defaults to hscrape.DefaultOrigin.
func WithOrigin(origin string) Option {
	return func(f *Fetcher) {
		f.resolver = markup.NewResolver(origin)
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return WithHeader("User-Agent", ua)
}

// WithHeader sets a request header sent with every fetch.
func WithHeader(key, value string) Option {
	return func(f *Fetcher) {
		f.header.Set(key, value)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		resolver: markup.NewResolver(hscrape.DefaultOrigin),
		header:   http.Header{},
	}
	f.header.Set("User-Agent", DefaultUserAgent)
	f.header.Set("Accept", "text/html,application/xhtml+xml")
	f.header.Set("Accept-Language", "en-US,en;q=0.9")
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Origin returns the origin paths are resolved against.
func (f *Fetcher) Origin() string {
	return f.resolver.Origin
}

// Fetch retrieves the HTML content found at path.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	url := f.resolver.Resolve(path)
	if url == "" {
		url = f.resolver.Origin + "/"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header = f.header.Clone()

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", hscrape.Errorf(hscrape.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
