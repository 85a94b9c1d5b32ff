// Package fetch retrieves raw listing pages over HTTP.
//
// The Fetcher interface is the seam between the network and the parsing
// layer; tests inject canned HTML through it. The HTTP client makes exactly
// one attempt per page — a failed fetch is reported immediately, never
// retried.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// UserAgent identifies this tool to the listing site.
	UserAgent = "hz-events/1.0 (github.com/jhalvorsen/hz-events)"
	// Timeout bounds a single page fetch.
	Timeout = 30 * time.Second
)

// Fetcher returns the raw HTML of a page, or a transport error.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Client fetches pages with a shared http.Client.
type Client struct {
	http *http.Client
}

// NewClient creates a Client with the default timeout.
func NewClient() *Client {
	return &Client{
		http: &http.Client{
			Timeout: Timeout,
		},
	}
}

// Fetch retrieves url and returns the response body as text. Any status
// other than 200 is an error.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	return string(body), nil
}
