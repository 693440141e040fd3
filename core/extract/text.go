// Package extract implements the two extraction strategies: one for
// category listing pages, one for single-product detail pages. Both produce
// the same normalized shape (core.Extraction).
package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var innerWhitespace = regexp.MustCompile(`\s+`)

// cleanText returns the selection's text with surrounding whitespace
// trimmed and inner runs collapsed to single spaces.
func cleanText(s *goquery.Selection) string {
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(s.Text(), " "))
}

// firstAttr returns the first non-empty value among the named attributes,
// checked in order. Used for lazy-load fallbacks like data-src over src.
func firstAttr(s *goquery.Selection, names ...string) string {
	for _, name := range names {
		if v, ok := s.Attr(name); ok && v != "" {
			return v
		}
	}
	return ""
}

// resolveURL resolves href against the page's own URL. Absolute values pass
// through untouched; unparseable input is returned as written.
func resolveURL(href string, base *url.URL) string {
	parsed, err := url.Parse(href)
	if err != nil || base == nil {
		return href
	}
	return base.ResolveReference(parsed).String()
}
