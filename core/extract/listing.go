package extract

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/kiloscrape/core"
	"github.com/gaurav-prasanna/kiloscrape/core/assets"
)

// Listing extracts every product in a category page's grid.
type Listing struct{}

// NewListing creates a Listing extractor.
func NewListing() *Listing {
	return &Listing{}
}

// Extract walks the grid items, scoped to the product-list container when
// one exists, document-wide otherwise. Asset URLs are appended in discovery
// order and may repeat; only the persisted ledgers deduplicate.
func (l *Listing) Extract(doc *goquery.Document, pageURL *url.URL) *core.Extraction {
	ex := &core.Extraction{Products: make(map[string]core.Product)}

	scope := doc.Selection
	if container := doc.Find(".productList").First(); container.Length() > 0 {
		scope = container
	}

	scope.Find("li.grid-item").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a.grid-item-link").First()
		if link.Length() == 0 {
			return
		}
		pageLink := link.AttrOr("href", "")
		if pageLink != "" {
			pageLink = resolveURL(pageLink, pageURL)
		}

		name := "Unknown Product"
		if title := item.Find("div.grid-item-title").First(); title.Length() > 0 {
			name = cleanText(title)
		}

		// A logo still counts as the product's primary image; it is only
		// kept out of the downloadable lists.
		var imageURL *string
		if src := firstAttr(item.Find("img.product-image").First(), "data-src", "src"); src != "" {
			resolved := resolveURL(src, pageURL)
			imageURL = &resolved
			if !assets.IsLogo(resolved) {
				if assets.IsDiagram(resolved) {
					ex.Diagrams = append(ex.Diagrams, resolved)
				} else {
					ex.Images = append(ex.Images, resolved)
				}
			}
		}

		var price *string
		if p := item.Find("div.grid-item-price").First(); p.Length() > 0 {
			v := cleanText(p)
			price = &v
		}

		ex.Products[name] = core.Product{
			Name:     name,
			PageLink: pageLink,
			ImageURL: imageURL,
			Price:    price,
			PageType: core.PageListing,
		}
	})

	return ex
}
