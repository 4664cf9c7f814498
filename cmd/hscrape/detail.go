package main

// Run executes the series command.
func (c *SeriesCmd) Run(deps *Dependencies) error {
	s, err := deps.Scraper.Series(deps.Ctx, c.Slug)
	if err != nil {
		return fail(deps, err)
	}
	return writeJSON(deps.Stdout, s)
}

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	w, err := deps.Scraper.Watch(deps.Ctx, c.Slug)
	if err != nil {
		return fail(deps, err)
	}
	return writeJSON(deps.Stdout, w)
}

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	d, err := deps.Scraper.Download(deps.Ctx, c.Slug)
	if err != nil {
		return fail(deps, err)
	}
	return writeJSON(deps.Stdout, d)
}
