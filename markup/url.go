package markup

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)
	proxiedSrc   = regexp.MustCompile(`[?&]src=([^&#]+)`)
)

// Resolver turns the references found in markup into absolute URLs.
type Resolver struct {
	Origin string
}

// NewResolver returns a Resolver for origin.
func NewResolver(origin string) Resolver {
	return Resolver{Origin: strings.TrimRight(origin, "/")}
}

// Resolve returns raw as an absolute URL. Absolute references pass through
// trimmed, protocol-relative ones get https, and everything else is joined
// to the origin. An empty reference stays empty.
func (r Resolver) Resolve(raw string) string {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		return ""
	case strings.HasPrefix(s, "//"):
		return "https:" + s
	case schemePrefix.MatchString(s):
		return s
	case strings.HasPrefix(s, "/"):
		return strings.TrimRight(r.Origin, "/") + s
	default:
		return strings.TrimRight(r.Origin, "/") + "/" + s
	}
}

// UnwrapProxiedImage returns the decoded target of an image proxy URL that
// carries it in a src query parameter. Other URLs are returned unchanged.
func UnwrapProxiedImage(raw string) string {
	m := proxiedSrc.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	target, err := url.PathUnescape(m[1])
	if err != nil || target == "" {
		return raw
	}
	return target
}

// lazyAttrs are checked in order before falling back to src.
var lazyAttrs = []string{"data-src", "data-lazy-src", "data-litespeed-src", "data-original"}

// PreferLazySource returns the real image URL of the first img in d. Lazy
// loading attributes win over src, and a data: URI placeholder in src is
// ignored. The result is unwrapped from any image proxy.
func PreferLazySource(d Document) string {
	attrs := d.Find("img").ownAttrs()
	for _, name := range lazyAttrs {
		if v, ok := attrValue(attrs, name); ok && strings.TrimSpace(v) != "" {
			return UnwrapProxiedImage(strings.TrimSpace(v))
		}
	}
	src, _ := attrValue(attrs, "src")
	src = strings.TrimSpace(src)
	if src == "" || strings.HasPrefix(strings.ToLower(src), "data:") {
		return ""
	}
	return UnwrapProxiedImage(src)
}
