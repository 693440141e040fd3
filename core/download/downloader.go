// Package download implements the Downloader interface.
// It fetches asset bytes and derives collision-free local filenames.
package download

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
)

// AssetDownloader saves remote assets through the shared session.
type AssetDownloader struct {
	client *resty.Client
}

// New creates an AssetDownloader on top of an existing session.
func New(client *resty.Client) *AssetDownloader {
	return &AssetDownloader{client: client}
}

// Download fetches rawURL and writes the bytes into destDir, which must
// already exist. It returns the filename chosen for the asset. Any response
// outside the 2xx range is an error and nothing is written.
func (d *AssetDownloader) Download(ctx context.Context, rawURL, destDir string) (string, error) {
	res, err := d.client.R().
		SetContext(ctx).
		Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", rawURL, err)
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("unexpected status %d for %s", res.StatusCode(), rawURL)
	}

	name := deriveFilename(rawURL, res.Header().Get("Content-Type"))
	name = disambiguate(destDir, name)

	if err := os.WriteFile(filepath.Join(destDir, name), res.Body(), 0644); err != nil {
		return "", fmt.Errorf("saving %s: %w", name, err)
	}
	return name, nil
}

// deriveFilename picks a local filename for an asset URL: the URL path's
// last segment, with an extension sniffed from the response content type
// when the path carries none, and a hash-derived name when the path yields
// nothing usable.
func deriveFilename(rawURL, contentType string) string {
	name := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		name = path.Base(parsed.Path)
		if name == "." || name == "/" {
			name = ""
		}
	}
	if path.Ext(name) == "" {
		name += extensionFor(contentType)
	}
	if name == "" || name == ".jpg" {
		name = fmt.Sprintf("image-%d.jpg", hashURL(rawURL)%10000)
	}
	return name
}

// extensionFor maps a declared content type to an image extension,
// defaulting to .jpg.
func extensionFor(contentType string) string {
	switch {
	case strings.Contains(contentType, "jpeg"), strings.Contains(contentType, "jpg"):
		return ".jpg"
	case strings.Contains(contentType, "png"):
		return ".png"
	case strings.Contains(contentType, "gif"):
		return ".gif"
	}
	return ".jpg"
}

// disambiguate appends (1), (2), ... before the extension until the name
// is free in destDir.
func disambiguate(destDir, name string) string {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := name
	for counter := 1; ; counter++ {
		if _, err := os.Stat(filepath.Join(destDir, candidate)); err != nil {
			return candidate
		}
		candidate = fmt.Sprintf("%s(%d)%s", base, counter, ext)
	}
}

func hashURL(rawURL string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(rawURL))
	return h.Sum32()
}
