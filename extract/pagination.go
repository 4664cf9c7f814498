package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/hscrape"
	"github.com/fwojciec/hscrape/markup"
)

var (
	pageOf     = regexp.MustCompile(`(?i)Page\s+(\d+)\s+of\s+(\d+)`)
	totalCount = regexp.MustCompile(`(?i)<header[^>]*>\s*<h[12][^>]*>[^<]*</h[12]>\s*<span[^>]*>\s*([\d,]+)\s*</span>`)
)

// Pagination reads the "Page X of Y" phrase from d. Without one, the
// requested page is taken as current and the total is 1.
func Pagination(d markup.Document, requested int) hscrape.Pagination {
	m := pageOf.FindStringSubmatch(d.String())
	if m == nil {
		return hscrape.NewPagination(requested, 1)
	}
	current, _ := strconv.Atoi(m[1])
	total, _ := strconv.Atoi(m[2])
	return hscrape.NewPagination(current, total)
}

// TotalItems reads the result count shown next to an archive heading.
func TotalItems(d markup.Document) *int {
	m := totalCount.FindStringSubmatch(d.String())
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return nil
	}
	return &n
}
