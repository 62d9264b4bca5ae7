package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Item is one story extracted from a feed. Title and Link are non-empty
// by construction; the parser drops fragments missing either. Published
// keeps the raw timestamp string from the feed and is parsed downstream.
type Item struct {
	Title     string
	Link      string
	Summary   string
	Published string
	Source    string
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch downloads one feed URL (redirects followed) and parses the body.
// Any failure is the caller's cue to treat the feed as empty.
func (c *Client) Fetch(ctx context.Context, url string) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("feed fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("feed read: %w", err)
	}

	return Parse(string(body)), nil
}
