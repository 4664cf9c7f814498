package mock

import "github.com/fwojciec/hscrape"

var _ hscrape.ChromeParser = (*ChromeParser)(nil)

// ChromeParser is a mock implementation of hscrape.ChromeParser.
type ChromeParser struct {
	ParseChromeFn func(html string) (*hscrape.SiteChrome, error)
}

func (p *ChromeParser) ParseChrome(html string) (*hscrape.SiteChrome, error) {
	return p.ParseChromeFn(html)
}
