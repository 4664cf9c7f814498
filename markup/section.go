package markup

import "strings"

// openingTag returns the offset of the '<' that opens the tag containing
// src[idx:]. When idx already points at a '<' it is returned unchanged.
func openingTag(src string, idx int) int {
	if strings.HasPrefix(src[idx:], "<") {
		return idx
	}
	if lt := strings.LastIndexByte(src[:idx], '<'); lt >= 0 {
		if gt := strings.LastIndexByte(src[:idx], '>'); gt < lt {
			return lt
		}
	}
	return idx
}

// BoundToLandmark returns the section of d opening at marker and ending just
// before the earliest of landmarks that follows it. The section starts at the
// opening tag containing marker. It runs to the end of d if no landmark
// follows, and is empty if marker is absent.
func BoundToLandmark(d Document, marker string, landmarks ...string) Document {
	idx := strings.Index(d.src, marker)
	if marker == "" || idx < 0 {
		return Document{}
	}
	start := openingTag(d.src, idx)
	from := idx + len(marker)
	end := len(d.src)
	for _, lm := range landmarks {
		if lm == "" {
			continue
		}
		if i := strings.Index(d.src[from:], lm); i >= 0 && from+i < end {
			end = from + i
		}
	}
	return Document{src: d.src[start:end]}
}

// BoundMatching returns the element whose opening tag contains marker,
// bounded by its depth-matched closing tag. It runs to the end of d if the
// element is never closed, and is empty if marker is absent.
func BoundMatching(d Document, marker string) Document {
	idx := strings.Index(d.src, marker)
	if marker == "" || idx < 0 {
		return Document{}
	}
	rest := Document{src: d.src[openingTag(d.src, idx):]}
	for t := range scan(rest.src) {
		if t.kind != startTag {
			return Document{}
		}
		return rest.Find(t.name)
	}
	return Document{}
}

// SplitAt cuts d into consecutive sections, each starting at the opening tag
// containing an occurrence of marker and ending where the next one starts.
// Markup before the first occurrence is dropped.
func SplitAt(d Document, marker string) []Document {
	if marker == "" {
		return nil
	}
	var starts []int
	for from := 0; ; {
		i := strings.Index(d.src[from:], marker)
		if i < 0 {
			break
		}
		starts = append(starts, openingTag(d.src, from+i))
		from += i + len(marker)
	}
	sections := make([]Document, 0, len(starts))
	for i, start := range starts {
		end := len(d.src)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if start < end {
			sections = append(sections, Document{src: d.src[start:end]})
		}
	}
	return sections
}
