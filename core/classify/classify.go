// Package classify decides whether a fetched page is a category listing or
// a single-product detail page.
package classify

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/kiloscrape/core"
)

// Detect classifies a parsed page. A product-list wrapper wins outright;
// otherwise more than one grid-item link means a listing. Anything else,
// including a page with no recognizable markup at all, is a detail page.
// There is no error path.
func Detect(doc *goquery.Document) core.PageType {
	if doc.Find(".productList").Length() > 0 {
		return core.PageListing
	}
	if doc.Find("a.grid-item-link").Length() > 1 {
		return core.PageListing
	}
	return core.PageDetail
}
