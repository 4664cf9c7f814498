package main

import (
	"fmt"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	res, err := deps.Scraper.Search(deps.Ctx, c.Query, c.Page)
	if err != nil {
		return fail(deps, err)
	}

	if len(res.Results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", res.Query)
		return nil
	}

	for _, r := range res.Results {
		if r.Year != "" {
			fmt.Fprintf(deps.Stdout, "%s (%s)  %s\n", r.Title, r.Year, r.URL)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", r.Title, r.URL)
	}
	p := res.Pagination
	fmt.Fprintf(deps.Stdout, "Page %d of %d\n", p.CurrentPage, p.TotalPages)
	return nil
}
