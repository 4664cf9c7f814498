// Package markup provides a tolerant, read-only view over HTML fragments
// and the field helpers used to pull values out of them.
//
// A Document is a plain string. Elements are located by tokenizing on
// demand, and every accessor reports absence as an empty value rather than
// an error.
package markup

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Document is an immutable HTML fragment.
type Document struct {
	src string
}

// New returns a Document over src.
func New(src string) Document {
	return Document{src: src}
}

// String returns the raw markup of the fragment.
func (d Document) String() string {
	return d.src
}

// IsEmpty reports whether the fragment holds no markup.
func (d Document) IsEmpty() bool {
	return strings.TrimSpace(d.src) == ""
}

// Contains reports whether the raw markup contains substr.
func (d Document) Contains(substr string) bool {
	return strings.Contains(d.src, substr)
}

// FindAll returns every element named tag, each spanning from its opening
// tag to its matching closing tag, in document order. Nested elements of the
// same name are counted so an outer element is never cut short at an inner
// closer. Void elements cover only their own tag; unclosed elements extend
// to the end of the fragment.
func (d Document) FindAll(tag string) []Document {
	type span struct{ start, end int }
	var (
		spans []span
		open  []int
	)
	for t := range scan(d.src) {
		if t.name != tag {
			continue
		}
		switch t.kind {
		case startTag:
			if t.selfClosing || voidElements[tag] {
				spans = append(spans, span{t.start, t.end})
				continue
			}
			open = append(open, t.start)
		case endTag:
			if len(open) == 0 {
				continue
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			spans = append(spans, span{start, t.end})
		}
	}
	for _, start := range open {
		spans = append(spans, span{start, len(d.src)})
	}
	slices.SortFunc(spans, func(a, b span) int { return a.start - b.start })

	docs := make([]Document, 0, len(spans))
	for _, s := range spans {
		docs = append(docs, Document{src: d.src[s.start:s.end]})
	}
	return docs
}

// FindAllFlat returns every element named tag, each spanning from its
// opening tag to the next closing tag of the same name. It is meant for
// card-like tags that never nest.
func (d Document) FindAllFlat(tag string) []Document {
	var docs []Document
	start := -1
	for t := range scan(d.src) {
		if t.name != tag {
			continue
		}
		switch {
		case t.kind == startTag && start < 0:
			if t.selfClosing || voidElements[tag] {
				docs = append(docs, Document{src: d.src[t.start:t.end]})
				continue
			}
			start = t.start
		case t.kind == endTag && start >= 0:
			docs = append(docs, Document{src: d.src[start:t.end]})
			start = -1
		}
	}
	if start >= 0 {
		docs = append(docs, Document{src: d.src[start:]})
	}
	return docs
}

// Find returns the first element named tag, or an empty Document.
func (d Document) Find(tag string) Document {
	if all := d.FindAll(tag); len(all) > 0 {
		return all[0]
	}
	return Document{}
}

// FindByAttr returns the elements named tag whose attr equals value.
// For the class attribute, value is matched against each class token.
func (d Document) FindByAttr(tag, attr, value string) []Document {
	var docs []Document
	for _, el := range d.FindAll(tag) {
		attrs := el.ownAttrs()
		if attr == "class" {
			if hasClassToken(attrs, value) {
				docs = append(docs, el)
			}
			continue
		}
		if v, ok := attrValue(attrs, attr); ok && v == value {
			docs = append(docs, el)
		}
	}
	return docs
}

// FindClass returns the elements named tag carrying class.
func (d Document) FindClass(tag, class string) []Document {
	return d.FindByAttr(tag, "class", class)
}

// FirstClass returns the first element named tag carrying class, or an
// empty Document.
func (d Document) FirstClass(tag, class string) Document {
	if all := d.FindClass(tag, class); len(all) > 0 {
		return all[0]
	}
	return Document{}
}

// Attr returns the value of name on the first tag element that carries it.
func (d Document) Attr(tag, name string) string {
	for t := range scan(d.src) {
		if t.kind != startTag || t.name != tag {
			continue
		}
		if v, ok := attrValue(t.attrs, name); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Attrs returns the value of name on every tag element carrying it, in
// document order.
func (d Document) Attrs(tag, name string) []string {
	var vals []string
	for t := range scan(d.src) {
		if t.kind != startTag || t.name != tag {
			continue
		}
		if v, ok := attrValue(t.attrs, name); ok {
			vals = append(vals, strings.TrimSpace(v))
		}
	}
	return vals
}

// OwnAttr returns the value of name on the fragment's own opening tag.
func (d Document) OwnAttr(name string) string {
	v, _ := attrValue(d.ownAttrs(), name)
	return strings.TrimSpace(v)
}

// HasClass reports whether the fragment's own opening tag carries class.
func (d Document) HasClass(class string) bool {
	return hasClassToken(d.ownAttrs(), class)
}

// InnerText returns the collapsed text of the first element named tag.
func (d Document) InnerText(tag string) string {
	return d.Find(tag).TextContent()
}

// TextContent returns the collapsed text of the whole fragment with all
// tags removed and entities decoded.
func (d Document) TextContent() string {
	var b strings.Builder
	for t := range scan(d.src) {
		switch t.kind {
		case textToken:
			b.WriteString(t.text)
		case startTag, endTag:
			b.WriteByte(' ')
		}
	}
	return CollapseSpace(b.String())
}

// Inner returns the markup between the fragment's own opening tag and its
// closing tag. A fragment without a closing tag yields everything after the
// opening tag.
func (d Document) Inner() Document {
	open, end := -1, len(d.src)
	var name string
	var last *token
	for t := range scan(d.src) {
		if open < 0 {
			if t.kind == startTag {
				open, name = t.end, t.name
			}
			continue
		}
		if t.kind == textToken && strings.TrimSpace(t.text) == "" {
			continue
		}
		last = &t
	}
	if open < 0 {
		return Document{}
	}
	if last != nil && last.kind == endTag && last.name == name {
		end = last.start
	}
	return Document{src: d.src[open:end]}
}

func (d Document) ownAttrs() []html.Attribute {
	for t := range scan(d.src) {
		if t.kind == startTag {
			return t.attrs
		}
		if t.kind == textToken && strings.TrimSpace(t.text) != "" {
			return nil
		}
	}
	return nil
}
