// Package config carries the runtime tunables read from the environment.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultUserAgent = "kiloscrape/1.0 (https://github.com/gaurav-prasanna/kiloscrape)"
	defaultTimeout   = 30 * time.Second
)

var (
	// UserAgent identifies the scraper on every request.
	UserAgent string
	// HTTPTimeout bounds the page fetch and each asset download.
	HTTPTimeout time.Duration
)

// Load reads a .env file when present and fills the package variables,
// falling back to defaults for anything unset.
func Load() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment defaults")
	}

	UserAgent = os.Getenv("KILOSCRAPE_USER_AGENT")
	if UserAgent == "" {
		UserAgent = defaultUserAgent
	}

	HTTPTimeout = defaultTimeout
	if raw := os.Getenv("KILOSCRAPE_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			slog.Warn("invalid KILOSCRAPE_HTTP_TIMEOUT, using default", "value", raw, "err", err)
		} else {
			HTTPTimeout = d
		}
	}
}
