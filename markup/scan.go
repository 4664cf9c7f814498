package markup

import (
	"iter"
	"strings"

	"golang.org/x/net/html"
)

type tokenKind int

const (
	startTag tokenKind = iota
	endTag
	textToken
)

// token is one tag or text run located by byte offsets in the scanned source.
type token struct {
	kind        tokenKind
	name        string
	attrs       []html.Attribute
	selfClosing bool
	start, end  int
	text        string
}

// voidElements never have content or a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// scan walks src with the HTML tokenizer. The tokenizer does not build a
// tree, so malformed nesting never aborts the walk. Offsets are recovered by
// summing raw token lengths. Text inside script, style and noscript is not
// yielded.
func scan(src string) iter.Seq[token] {
	return func(yield func(token) bool) {
		z := html.NewTokenizer(strings.NewReader(src))
		pos := 0
		var rawParent string
		for {
			tt := z.Next()
			if tt == html.ErrorToken {
				return
			}
			n := len(z.Raw())
			t := token{start: pos, end: pos + n}
			pos += n

			switch tt {
			case html.StartTagToken, html.SelfClosingTagToken:
				name, hasAttr := z.TagName()
				t.kind = startTag
				t.name = string(name)
				t.selfClosing = tt == html.SelfClosingTagToken
				for hasAttr {
					var key, val []byte
					key, val, hasAttr = z.TagAttr()
					t.attrs = append(t.attrs, html.Attribute{Key: string(key), Val: string(val)})
				}
				switch t.name {
				case "script", "style", "noscript":
					if !t.selfClosing {
						rawParent = t.name
					}
				}
			case html.EndTagToken:
				name, _ := z.TagName()
				t.kind = endTag
				t.name = string(name)
				if t.name == rawParent {
					rawParent = ""
				}
			case html.TextToken:
				if rawParent != "" {
					continue
				}
				t.kind = textToken
				t.text = string(z.Text())
			default:
				continue
			}

			if !yield(t) {
				return
			}
		}
	}
}

func attrValue(attrs []html.Attribute, name string) (string, bool) {
	for _, a := range attrs {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func hasClassToken(attrs []html.Attribute, class string) bool {
	v, ok := attrValue(attrs, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}
