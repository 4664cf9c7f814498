// Package fs exports archived snapshots to a directory tree.
package fs

import (
	"net/url"
	"strings"

	"github.com/fwojciec/hscrape"
)

// PathToFile converts a site path to a relative file path.
// Example: /trending/page/2/ → trending/page/2/index.json
//
// A query string is folded into the file name so that search pages do not
// collide with the directory they live under:
// /?s=tsuki → index.s-tsuki.json
func PathToFile(path string) (string, error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", hscrape.Errorf(hscrape.EINVALID, "invalid snapshot path %q", path)
	}

	name := "index"
	if u.RawQuery != "" {
		name += "." + sanitize(u.Query().Encode())
	}
	name += ".json"

	p := strings.Trim(u.Path, "/")
	if p == "" {
		return name, nil
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." || seg == "." {
			return "", hscrape.Errorf(hscrape.EINVALID, "invalid snapshot path %q", path)
		}
	}
	return p + "/" + name, nil
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, s)
}
