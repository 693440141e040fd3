// Package assets classifies discovered asset URLs.
// Provides the logo exclusion rule, the diagram/image partition, and the
// CDN-host checks used by the detail extractor.
package assets

import (
	"net/url"
	"path"
	"strings"
)

// cdnHosts are the site's asset CDN hosts. An anchor or image is only
// considered downloadable when its URL mentions one of these.
var cdnHosts = []string{
	"static1.squarespace.com",
	"squarespace-cdn.com",
}

// anchorExtensions are the image extensions accepted on direct asset links.
var anchorExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// IsLogo reports whether a URL points at a site logo. Logos are excluded
// from the downloadable asset lists. The match is case-insensitive and
// looks for "logo" bare or bounded by underscore/hyphen anywhere in the
// URL, then in the final path segment on its own.
func IsLogo(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	lower := strings.ToLower(rawURL)
	if strings.Contains(lower, "logo") ||
		strings.Contains(lower, "_logo_") ||
		strings.Contains(lower, "logo-") ||
		strings.Contains(lower, "-logo") {
		return true
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(path.Base(parsed.Path)), "logo")
}

// IsDiagram reports whether an asset URL is a schematic diagram rather than
// a photographic image. The partition is by path extension: .png means
// diagram, anything else means image. Query strings are ignored.
func IsDiagram(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.HasSuffix(strings.ToLower(parsed.Path), ".png")
}

// OnCDN reports whether a raw href or src value mentions one of the site's
// asset CDN hosts. The check runs on the attribute value as written, before
// any URL resolution.
func OnCDN(raw string) bool {
	for _, host := range cdnHosts {
		if strings.Contains(raw, host) {
			return true
		}
	}
	return false
}

// IsAssetAnchor reports whether an anchor href is a direct asset link:
// it must sit on a CDN host and either carry a format query or end in a
// recognized image extension.
func IsAssetAnchor(href string) bool {
	if !OnCDN(href) {
		return false
	}
	if strings.Contains(href, "?format=") {
		return true
	}
	for _, ext := range anchorExtensions {
		if strings.HasSuffix(href, ext) {
			return true
		}
	}
	return false
}
