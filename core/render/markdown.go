// Package render turns the fetched page into its on-disk snapshots:
// one Markdown document per run, and optionally a PDF laid out from it.
package render

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/kiloscrape/core"
)

// plan describes how one page type renders: which subtree to select, the
// section header, and the snapshot filename.
type plan struct {
	filename string
	selector string
	header   string
}

var plans = map[core.PageType]plan{
	core.PageListing: {
		filename: "category_overview.md",
		selector: "#page-wrapper .container .main-content .info",
		header:   "Category",
	},
	core.PageDetail: {
		filename: "product_details.md",
		selector: "#page-wrapper .container .main-content",
		header:   "Product Details",
	},
}

// SnapshotFilename returns the fixed markdown filename for a page type.
func SnapshotFilename(pageType core.PageType) string {
	return plans[pageType].filename
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// nbsp folds the entity spelling and the bare rune into plain spaces.
var nbsp = strings.NewReplacer("&nbsp;", " ", "\u00a0", " ")

// MarkdownRenderer converts the relevant subtree of a fetched page into
// normalized Markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render selects the page-type subtree, falling back to the whole document
// when the selector matches nothing, rewrites link targets, converts the
// inner HTML to Markdown and normalizes whitespace. An empty subtree
// renders as an empty snapshot with no header.
func (r *MarkdownRenderer) Render(doc *goquery.Document, pageType core.PageType, pageURL *url.URL) (string, error) {
	p := plans[pageType]

	sel := doc.Find(p.selector).First()
	if sel.Length() == 0 {
		sel = doc.Selection
	}

	rewrite(sel, pageURL)

	inner, err := sel.Html()
	if err != nil {
		return "", fmt.Errorf("serializing selection: %w", err)
	}
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return "", nil
	}

	markdown, err := htmltomarkdown.ConvertString(inner)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return normalize(markdown, p.header), nil
}

// normalize applies the snapshot's whitespace discipline: non-breaking
// spaces become plain spaces, runs of three or more newlines collapse to a
// blank line, every line loses surrounding whitespace, and the section
// header goes on top.
func normalize(markdown, header string) string {
	text := nbsp.Replace(markdown)
	text = strings.TrimSpace(text)
	text = blankRuns.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	return "## " + header + "\n\n" + strings.TrimSpace(text) + "\n"
}
