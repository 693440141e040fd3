// Package store owns the on-disk output layout and merges each run's
// records with whatever previous runs left behind.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Subdirectory names referenced by the pipeline stages.
const (
	DirDiagrams  = "block_diagrams"
	DirImages    = "images"
	DirMarkdowns = "markdowns"
	DirTables    = "tables"
)

// Ledger files inside the subdirectories above. The diagram ledger keeps
// its historical mappings name; block_diagrams carries no metadata.json.
const (
	imagesLedger   = "metadata.json"
	diagramsLedger = "block_diagram_mappings.json"
	productsFile   = "products.json"
)

// imagesKey is the reserved products.json key holding the image ledger.
const imagesKey = "images"

// subdirs is every directory of a full layout.
var subdirs = []string{
	DirDiagrams,
	"design_resources",
	"documentation",
	DirImages,
	DirMarkdowns,
	"other",
	"software_tools",
	DirTables,
	"trainings",
}

// seedFiles lists the JSON files each subdirectory starts with.
// products.json seeds as an object, everything else as a list; markdowns
// holds no seed.
var seedFiles = map[string][]string{
	DirDiagrams:        {diagramsLedger},
	"design_resources": {"metadata.json"},
	"documentation":    {"metadata.json"},
	DirImages:          {imagesLedger},
	"other":            {"metadata.json"},
	"software_tools":   {"metadata.json"},
	DirTables:          {"metadata.json", productsFile},
	"trainings":        {"metadata.json"},
}

// Store reads and writes scrape state under one output directory.
type Store struct {
	Dir string
}

// New creates a Store rooted at the given output directory.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

// EnsureLayout creates the output directory tree and seeds every ledger
// not already present. Existing files are never touched, so running over
// a populated store is safe. An output directory named "category" gets
// only the markdown and table subdirectories.
func (s *Store) EnsureLayout() error {
	dirs := subdirs
	if filepath.Base(s.Dir) == "category" {
		dirs = []string{DirMarkdowns, DirTables}
	}

	for _, sub := range dirs {
		subPath := filepath.Join(s.Dir, sub)
		if err := os.MkdirAll(subPath, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", subPath, err)
		}
		for _, name := range seedFiles[sub] {
			seedPath := filepath.Join(subPath, name)
			if _, err := os.Stat(seedPath); err == nil {
				continue
			}
			var seed any = []any{}
			if name == productsFile {
				seed = map[string]any{}
			}
			if err := writeJSON(seedPath, seed); err != nil {
				return err
			}
		}
	}
	return nil
}
