// Package fetch retrieves question source documents over HTTP and
// keeps the freshest copy in the durable store, falling back to the
// stored copy when the network is unavailable.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
)

// Document is a fetched source document before decoding.
type Document struct {
	// Body is the response body exactly as received.
	Body string
	// LastModified is the resource's modification time from response
	// metadata. Zero when the response carried no usable header.
	LastModified time.Time
}

// Fetcher retrieves a source document from a canonical URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Document, error)
}

// Client is the HTTP implementation of Fetcher.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client with the given fetch timeout. A timeout
// counts as a network failure, which triggers the cache fallback.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the document at url. Any transport failure or
// non-success status is reported as a NetworkError.
func (c *Client) Fetch(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &entities.NetworkError{URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &entities.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &entities.NetworkError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &entities.NetworkError{URL: url, Err: fmt.Errorf("reading response body: %w", err)}
	}

	var lastModified time.Time
	if hdr := resp.Header.Get("Last-Modified"); hdr != "" {
		if t, err := http.ParseTime(hdr); err == nil {
			lastModified = t
		}
	}

	return &Document{
		Body:         string(body),
		LastModified: lastModified,
	}, nil
}
