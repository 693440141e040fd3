package extract

import (
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/kiloscrape/core"
	"github.com/gaurav-prasanna/kiloscrape/core/assets"
)

// minParagraphRunes is the cutoff below which a paragraph is considered
// boilerplate when assembling the fallback description.
const minParagraphRunes = 20

// Detail extracts the single product described by a detail page.
type Detail struct{}

// NewDetail creates a Detail extractor.
func NewDetail() *Detail {
	return &Detail{}
}

// Extract reads the product title, description, primary image and
// specification list, then collects diagram and image assets from both
// direct CDN anchors and inline images. Unlike the listing extractor, the
// asset lists here are deduplicated by membership, since the same diagram
// can legitimately surface through both markup sources.
func (d *Detail) Extract(doc *goquery.Document, pageURL *url.URL) *core.Extraction {
	ex := &core.Extraction{Products: make(map[string]core.Product)}

	name := cleanText(doc.Find("h1").First())

	var description *string
	if og := doc.Find("meta[property='og:description']").AttrOr("content", ""); og != "" {
		description = &og
	} else if joined := fallbackDescription(doc); joined != "" {
		description = &joined
	}

	// The Open-Graph image is recorded verbatim: no resolution against the
	// page URL and no diagram/image reclassification.
	var imageURL *string
	if og, ok := doc.Find("meta[property='og:image']").Attr("content"); ok {
		imageURL = &og
	}

	specs := extractSpecifications(doc)

	ex.Diagrams = extractDiagramAnchors(doc, pageURL)

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		raw := firstAttr(img, "data-src", "src")
		if raw == "" || !assets.OnCDN(raw) {
			return
		}
		full := resolveURL(raw, pageURL)
		if assets.IsDiagram(full) {
			if !slices.Contains(ex.Diagrams, full) && !assets.IsLogo(full) {
				ex.Diagrams = append(ex.Diagrams, full)
			}
		} else {
			if !slices.Contains(ex.Images, full) && !assets.IsLogo(full) {
				ex.Images = append(ex.Images, full)
			}
		}
	})

	// Without a title there is nothing to key the record on; the page's
	// assets are still collected above.
	if name != "" {
		pageLink := ""
		if pageURL != nil {
			pageLink = pageURL.String()
		}
		var specifications map[string]string
		if len(specs) > 0 {
			specifications = specs
		}
		ex.Products[name] = core.Product{
			Name:           name,
			Description:    description,
			PageLink:       pageLink,
			ImageURL:       imageURL,
			Specifications: specifications,
			PageType:       core.PageDetail,
		}
	}

	return ex
}

// fallbackDescription joins the text of every substantial paragraph on the
// page. Used when the page carries no Open-Graph description.
func fallbackDescription(doc *goquery.Document) string {
	var parts []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := cleanText(p); utf8.RuneCountInString(text) > minParagraphRunes {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

// extractSpecifications scans every list item on the page and splits any
// colon-carrying text on the first colon. A repeated key keeps the last
// value seen.
func extractSpecifications(doc *goquery.Document) map[string]string {
	specs := make(map[string]string)
	doc.Find("ul li").Each(func(_ int, li *goquery.Selection) {
		text := cleanText(li)
		if !strings.Contains(text, ":") {
			return
		}
		parts := strings.SplitN(text, ":", 2)
		specs[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	})
	return specs
}

// extractDiagramAnchors collects direct links to CDN-hosted diagram assets,
// deduplicated by membership in discovery order.
func extractDiagramAnchors(doc *goquery.Document, pageURL *url.URL) []string {
	var diagrams []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if !assets.IsAssetAnchor(href) {
			return
		}
		full := resolveURL(href, pageURL)
		if !slices.Contains(diagrams, full) {
			diagrams = append(diagrams, full)
		}
	})
	return diagrams
}
