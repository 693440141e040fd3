// Package cmd implements the CLI commands for kiloscrape using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kiloscrape",
	Short: "kiloscrape — archive product pages into a merge-friendly store",
	Long: `kiloscrape fetches a product or category page, downloads its image and
block diagram assets, and folds everything into an on-disk JSON store
that survives re-runs without duplicating records.

Usage:
  kiloscrape scrape <url> --out <dir>`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
