package resolve

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to an upstream JSON API. A zero base URL means the upstream
// is not deployed; calls then fail fast with ErrNotConfigured so the
// resolver moves straight to the fallback source.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Get performs a conditional GET. A non-empty validator is sent as
// If-None-Match; a 304 answer sets notModified and carries no payload.
func (c *Client) Get(ctx context.Context, path, validator string) (payload []byte, newValidator string, notModified bool, err error) {
	if !c.Configured() {
		return nil, "", false, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", false, err
	}
	req.Header.Set("Accept", "application/json")
	if validator != "" {
		req.Header.Set("If-None-Match", validator)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return nil, validator, true, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", false, fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	payload, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", false, err
	}
	return payload, resp.Header.Get("ETag"), false, nil
}

func (c *Client) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("POST %s: unexpected status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
