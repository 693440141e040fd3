// Package render — PDF snapshot.
// Lays a rendered Markdown snapshot out as a PDF using gofpdf. Headings get
// sized fonts, lists get bullets, code spans render monospaced. Images are
// not embedded; the asset files on disk are the canonical copies.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders a Markdown snapshot as a printable PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var numberedItem = regexp.MustCompile(`^\d+\.\s`)

// Render converts Markdown into PDF bytes. The source URL prints in a
// banner under the top margin so a saved copy keeps its provenance.
func (r *PDFRenderer) Render(markdown, sourceURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+sourceURL, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	inCodeBlock := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}
		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, line, "", "L", true)
			continue
		}

		switch {
		case trimmed == "":
			pdf.Ln(3)
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			writeHeading(pdf, strings.TrimSpace(strings.TrimLeft(trimmed, "# ")), level)
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, "• "+stripInlineMarkdown(trimmed[2:]), "", "L", false)
		case numberedItem.MatchString(trimmed):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, stripInlineMarkdown(trimmed), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, stripInlineMarkdown(line), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeHeading maps the heading level to a font size and writes the text.
func writeHeading(pdf *gofpdf.Fpdf, text string, level int) {
	var size float64
	switch level {
	case 1:
		size = 18
	case 2:
		size = 15
	case 3:
		size = 13
	case 4:
		size = 12
	case 5:
		size = 11
	default:
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, stripInlineMarkdown(text), "", "L", false)
	pdf.Ln(2)
}

var (
	italicSpan = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	codeSpan   = regexp.MustCompile("`([^`]+)`")
	linkSpan   = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// stripInlineMarkdown removes inline formatting markers, keeping link text.
func stripInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicSpan.ReplaceAllString(text, " $1 ")
	text = codeSpan.ReplaceAllString(text, "$1")
	text = linkSpan.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
