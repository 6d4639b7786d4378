// Package htmlcascade implements ordered-fallback selection over parsed
// HTML. Store markup drifts between redesigns, so every extraction goes
// through a cascade: an ordered list of selectors tried until one matches.
package htmlcascade

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseDocument parses a raw HTML payload.
func ParseDocument(payload []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(payload))
}

// Containers returns the item containers matched by the first selector in
// the cascade that matches at least once. Later selectors are not tried once
// a selector commits; a selector matching zero containers just advances the
// cascade. The bool is false when every selector missed.
func Containers(doc *goquery.Document, selectors []string) (*goquery.Selection, bool) {
	for _, selector := range selectors {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			return sel, true
		}
	}
	return nil, false
}

// Text returns the trimmed text of the first selector whose first match has
// non-empty text.
func Text(item *goquery.Selection, selectors ...string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(item.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// Attr returns the value of attr on the first selector whose first match
// carries it non-empty.
func Attr(item *goquery.Selection, attr string, selectors ...string) string {
	for _, selector := range selectors {
		if val, ok := item.Find(selector).First().Attr(attr); ok {
			if val = strings.TrimSpace(val); val != "" {
				return val
			}
		}
	}
	return ""
}

// AnyAttr tries each attribute name in order on the first match of each
// selector. Lazy-loaded images keep the real URL in data-src while src holds
// a pixel, so callers pass both.
func AnyAttr(item *goquery.Selection, attrs []string, selectors ...string) string {
	for _, selector := range selectors {
		sel := item.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		for _, attr := range attrs {
			if val, ok := sel.Attr(attr); ok {
				if val = strings.TrimSpace(val); val != "" {
					return val
				}
			}
		}
	}
	return ""
}

// ResolveURL resolves href against the platform origin. Absolute URLs pass
// through; anything unparseable resolves to "".
func ResolveURL(origin, href string) string {
	if href == "" {
		return ""
	}
	base, err := url.Parse(origin)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
