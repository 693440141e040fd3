// Package core defines the pipeline types for kiloscrape.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// PageType is the classifier's verdict for a fetched page.
type PageType string

const (
	// PageListing is a category page carrying a grid of products.
	PageListing PageType = "category"
	// PageDetail is a page describing a single product.
	PageDetail PageType = "product_detail"
)

// FetchResult holds the raw HTML and response metadata from a page fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Product is one scraped product record. Records are keyed by display name
// in the persisted product table; a later record with the same name replaces
// the earlier one at merge time.
type Product struct {
	Name           string            `json:"Product"`
	Description    *string           `json:"description"`
	PageLink       string            `json:"product_page_link"`
	ImageURL       *string           `json:"image_url"`
	Price          *string           `json:"price"`
	Specifications map[string]string `json:"specifications"`
	PDFLink        *string           `json:"pdf_link"`
	PDFFilename    *string           `json:"pdf_filename"`

	// PageType records which extractor produced the record and selects
	// its serialized shape; see MarshalJSON.
	PageType PageType `json:"-"`
}

// MarshalJSON writes the key set of the page type that produced the record:
// listing records carry a price where detail records carry specifications,
// and a missing value persists as an explicit null. Records with no page
// type take the detail shape, matching the classifier's default verdict.
func (p Product) MarshalJSON() ([]byte, error) {
	type listing struct {
		Name        string  `json:"Product"`
		Description *string `json:"description"`
		PageLink    string  `json:"product_page_link"`
		ImageURL    *string `json:"image_url"`
		Price       *string `json:"price"`
		PDFLink     *string `json:"pdf_link"`
		PDFFilename *string `json:"pdf_filename"`
	}
	type detail struct {
		Name           string            `json:"Product"`
		Description    *string           `json:"description"`
		PageLink       string            `json:"product_page_link"`
		ImageURL       *string           `json:"image_url"`
		Specifications map[string]string `json:"specifications"`
		PDFLink        *string           `json:"pdf_link"`
		PDFFilename    *string           `json:"pdf_filename"`
	}

	var rec any
	if p.PageType == PageListing {
		rec = listing{
			Name:        p.Name,
			Description: p.Description,
			PageLink:    p.PageLink,
			ImageURL:    p.ImageURL,
			Price:       p.Price,
			PDFLink:     p.PDFLink,
			PDFFilename: p.PDFFilename,
		}
	} else {
		rec = detail{
			Name:           p.Name,
			Description:    p.Description,
			PageLink:       p.PageLink,
			ImageURL:       p.ImageURL,
			Specifications: p.Specifications,
			PDFLink:        p.PDFLink,
			PDFFilename:    p.PDFFilename,
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Asset is one downloaded file tracked in a category ledger, identified by
// its source URL. The four trailing fields are reserved for manual
// annotation and are always persisted as null.
type Asset struct {
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	FilePath    string  `json:"file_path"`
	Version     *string `json:"version"`
	Date        *string `json:"date"`
	Language    *string `json:"language"`
	Description *string `json:"description"`
}

// Extraction is the normalized output shared by both extractors: the
// products found on the page plus the asset URLs partitioned into
// photographic images and schematic diagrams, in discovery order.
// The listing extractor may repeat a URL; deduplication happens against
// the persisted ledgers at merge time.
type Extraction struct {
	Products map[string]Product
	Images   []string
	Diagrams []string
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the product and asset set out of a parsed page.
// Missing markup degrades to defaults; extraction itself cannot fail.
type Extractor interface {
	Extract(doc *goquery.Document, pageURL *url.URL) *Extraction
}

// Downloader fetches one asset into destDir and returns the filename it
// settled on. Any network or filesystem failure comes back as an error and
// the asset is simply absent from this run.
type Downloader interface {
	Download(ctx context.Context, rawURL, destDir string) (string, error)
}
