// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests through a shared resty session.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gaurav-prasanna/kiloscrape/core"
)

// NewClient builds the HTTP session shared by the page fetcher and the
// asset downloader: one persistent identity header and one timeout for
// every request in a run.
func NewClient(userAgent string, timeout time.Duration) *resty.Client {
	client := resty.New()
	client.SetHeader("User-Agent", userAgent)
	client.SetTimeout(timeout)
	return client
}

// HTTPFetcher fetches web pages via the shared session.
type HTTPFetcher struct {
	client *resty.Client
}

// New creates an HTTPFetcher on top of an existing session.
func New(client *resty.Client) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

// Fetch retrieves the HTML content of the given URL. Any response outside
// the 2xx range is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	res, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("unexpected status %d for %s", res.StatusCode(), url)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: res.StatusCode(),
		HTML:       res.String(),
	}, nil
}
