package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// DecodeEntities replaces named and numeric character references with the
// characters they stand for.
func DecodeEntities(s string) string {
	return html.UnescapeString(s)
}

// CollapseSpace collapses runs of whitespace to a single space and trims.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripMarkup removes all tags from s, decodes entities and collapses
// whitespace.
func StripMarkup(s string) string {
	return New(s).TextContent()
}
