package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/kiloscrape/core"
)

// MergeImages merges this run's image URLs into the image ledger,
// downloading only what the ledger does not already record. The returned
// list is the full persisted ledger, existing records first.
func (s *Store) MergeImages(ctx context.Context, urls []string, dl core.Downloader) ([]core.Asset, error) {
	return s.mergeAssets(ctx, DirImages, imagesLedger, urls, dl)
}

// MergeDiagrams merges diagram URLs into the diagram ledger.
func (s *Store) MergeDiagrams(ctx context.Context, urls []string, dl core.Downloader) ([]core.Asset, error) {
	return s.mergeAssets(ctx, DirDiagrams, diagramsLedger, urls, dl)
}

func (s *Store) mergeAssets(ctx context.Context, subdir, ledger string, urls []string, dl core.Downloader) ([]core.Asset, error) {
	ledgerPath := filepath.Join(s.Dir, subdir, ledger)
	merged := loadAssets(ledgerPath)

	seen := make(map[string]bool, len(merged))
	for _, a := range merged {
		seen[a.URL] = true
	}

	for _, u := range urls {
		if seen[u] {
			slog.Info("skipping recorded asset", "url", u)
			continue
		}
		name, err := dl.Download(ctx, u, filepath.Join(s.Dir, subdir))
		if err != nil {
			slog.Warn("failed to download asset", "url", u, "err", err)
			continue
		}
		merged = append(merged, core.Asset{
			Name:     name,
			URL:      u,
			FilePath: fmt.Sprintf("%s/%s/%s", s.Dir, subdir, name),
		})
		seen[u] = true
	}

	if merged == nil {
		merged = []core.Asset{}
	}
	if err := writeJSON(ledgerPath, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// MergeProducts overwrites the product table with this run's records,
// keeping records from earlier runs under keys this run did not produce,
// and attaches the full image ledger under the reserved "images" key. A
// stale "images" entry loaded from disk is always replaced.
func (s *Store) MergeProducts(products map[string]core.Product, images []core.Asset) error {
	tablePath := filepath.Join(s.Dir, DirTables, productsFile)
	existing := loadProducts(tablePath)

	merged := make(map[string]any, len(existing)+len(products)+1)
	for name, raw := range existing {
		merged[name] = raw
	}
	for name, p := range products {
		merged[name] = p
	}
	if images == nil {
		images = []core.Asset{}
	}
	merged[imagesKey] = images

	return writeJSON(tablePath, merged)
}

// SaveSnapshot writes a markdown or PDF snapshot into the markdowns
// directory, fully replacing any previous copy. Snapshots reflect only the
// most recently fetched page, so they never merge.
func (s *Store) SaveSnapshot(name string, data []byte) (string, error) {
	path := filepath.Join(s.Dir, DirMarkdowns, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// loadAssets reads an asset ledger, degrading to empty when the file is
// missing or unreadable so a damaged store never aborts a run.
func loadAssets(path string) []core.Asset {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to read asset ledger", "path", path, "err", err)
		}
		return nil
	}
	var assets []core.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		slog.Warn("failed to parse asset ledger", "path", path, "err", err)
		return nil
	}
	return assets
}

// loadProducts reads the product table as raw records so entries written
// by earlier runs survive untouched. Missing or unreadable degrades to
// empty like the asset ledgers.
func loadProducts(path string) map[string]json.RawMessage {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to read product table", "path", path, "err", err)
		}
		return nil
	}
	var products map[string]json.RawMessage
	if err := json.Unmarshal(data, &products); err != nil {
		slog.Warn("failed to parse product table", "path", path, "err", err)
		return nil
	}
	return products
}

// writeJSON persists v as pretty-printed UTF-8 JSON. HTML escaping is off
// so URLs and non-ASCII text round-trip literally. The write goes through
// a temp file and a rename, leaving either the old or the new content on
// disk, never a partial file.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
