package main

import (
	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/scrape"
)

// Run executes the listing command.
func (c *ListingCmd) Run(deps *Dependencies) error {
	rec, _, err := scrape.Page(deps.Ctx, deps.Scraper, hscrape.PageKind(c.Kind), c.Arg, c.Page)
	if err != nil {
		return fail(deps, err)
	}
	return writeJSON(deps.Stdout, rec)
}
