package main

import (
	"fmt"
	"text/tabwriter"
)

// Run executes the genres command.
func (c *GenresCmd) Run(deps *Dependencies) error {
	genres, err := deps.Scraper.Genres(deps.Ctx)
	if err != nil {
		return fail(deps, err)
	}

	if len(genres) == 0 {
		fmt.Fprintln(deps.Stdout, "No genres found.")
		return nil
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	for _, g := range genres {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", g.Slug, g.Name, g.Count)
	}
	return tw.Flush()
}
