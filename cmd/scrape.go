// Package cmd — scrape command.
// This is the main command that orchestrates the pipeline:
// scaffold → fetch → classify → extract → merge → snapshot.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/kiloscrape/config"
	"github.com/gaurav-prasanna/kiloscrape/core"
	"github.com/gaurav-prasanna/kiloscrape/core/classify"
	"github.com/gaurav-prasanna/kiloscrape/core/download"
	"github.com/gaurav-prasanna/kiloscrape/core/extract"
	"github.com/gaurav-prasanna/kiloscrape/core/fetch"
	"github.com/gaurav-prasanna/kiloscrape/core/render"
	"github.com/gaurav-prasanna/kiloscrape/core/store"
)

// Flag variables.
var (
	flagOutDir string
	flagPDF    bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape one page into the output directory",
	Long: `Scrape fetches a category or product page, detects its type, extracts
products and assets, merges them into the output directory's JSON store,
and writes a markdown snapshot of the page content.

Examples:
  kiloscrape scrape https://www.kilointernational.com/attenuators --out part1
  kiloscrape scrape https://www.kilointernational.com/attenuators/vb-7400 --out part1 --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&flagOutDir, "out", "", "Output directory (required)")
	scrapeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Also write a PDF snapshot next to the markdown")
}

func runScrape(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	if flagOutDir == "" {
		return fmt.Errorf("--out is required")
	}

	// Validate URL.
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	config.Load()

	// Scaffold first so a failed fetch still leaves a usable layout.
	st := store.New(flagOutDir)
	fmt.Fprintf(os.Stdout, "Creating folder structure in %s\n", flagOutDir)
	if err := st.EnsureLayout(); err != nil {
		return fmt.Errorf("scaffolding output directory: %w", err)
	}

	// One session serves the page fetch and every asset download.
	client := fetch.NewClient(config.UserAgent, config.HTTPTimeout)
	var fetcher core.Fetcher = fetch.New(client)
	dl := download.New(client)

	ctx := context.Background()

	fmt.Fprintf(os.Stdout, "Fetching %s\n", rawURL)
	result, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		return fmt.Errorf("parsing page: %w", err)
	}

	pageType := classify.Detect(doc)
	fmt.Fprintf(os.Stdout, "Detected page type: %s\n", pageType)

	var extractor core.Extractor
	if pageType == core.PageListing {
		extractor = extract.NewListing()
	} else {
		extractor = extract.NewDetail()
	}
	ex := extractor.Extract(doc, parsed)
	fmt.Fprintf(os.Stdout, "Found %d products\n", len(ex.Products))

	images, err := st.MergeImages(ctx, ex.Images, dl)
	if err != nil {
		return fmt.Errorf("merging images: %w", err)
	}
	fmt.Fprintf(os.Stdout, "✓ %d images recorded\n", len(images))

	diagrams, err := st.MergeDiagrams(ctx, ex.Diagrams, dl)
	if err != nil {
		return fmt.Errorf("merging block diagrams: %w", err)
	}
	fmt.Fprintf(os.Stdout, "✓ %d block diagrams recorded\n", len(diagrams))

	if err := st.MergeProducts(ex.Products, images); err != nil {
		return fmt.Errorf("merging products: %w", err)
	}
	fmt.Fprintf(os.Stdout, "✓ %d products merged\n", len(ex.Products))

	markdown, err := render.NewMarkdownRenderer().Render(doc, pageType, parsed)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	mdPath, err := st.SaveSnapshot(render.SnapshotFilename(pageType), []byte(markdown))
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", mdPath)

	if flagPDF {
		data, err := render.NewPDFRenderer().Render(markdown, rawURL)
		if err != nil {
			return fmt.Errorf("rendering PDF: %w", err)
		}
		name := strings.TrimSuffix(render.SnapshotFilename(pageType), ".md") + ".pdf"
		pdfPath, err := st.SaveSnapshot(name, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", pdfPath)
	}

	fmt.Fprintf(os.Stdout, "\nScraping complete! Data saved to: %s\n", flagOutDir)
	return nil
}
