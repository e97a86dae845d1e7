package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUserAgent identifies the downloader to the registry.
const DefaultUserAgent = "handiism/modrinth-downloader (github.com/handiism/modrinth-downloader)"

// Client wraps HTTP operations with registry-specific configuration.
//
// Client provides:
//   - Configured User-Agent header (the Modrinth API rejects generic agents)
//   - Timeout handling
//   - JSON decoding of API responses
//   - Streaming bodies for file downloads
//
// Example usage:
//
//	client := NewClient(DefaultUserAgent, 60*time.Second)
//
//	var project struct{ ID string `json:"id"` }
//	err := client.GetJSON(ctx, "https://api.modrinth.com/v2/project/sodium", &project)
//
//	body, err := client.Open(ctx, fileURL)
//	defer body.Close()
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client.
//
// An empty userAgent falls back to DefaultUserAgent; a non-positive timeout
// disables the client-side timeout.
func NewClient(userAgent string, timeout time.Duration) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout < 0 {
		timeout = 0
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// StatusError is returned when the server answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s (%s)", e.StatusCode, e.Status, e.URL)
}

// IsNotFound reports whether err is a StatusError carrying 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// Open performs a GET request and returns the response body for streaming.
//
// The caller must close the returned body. Returns a *StatusError if the
// response status is not 200 OK.
//
// Example:
//
//	body, err := client.Open(ctx, "https://cdn.modrinth.com/data/.../file.jar")
//	if err != nil {
//	    return err
//	}
//	defer body.Close()
//	_, err = io.Copy(dst, body)
func (c *Client) Open(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: url}
	}

	return resp.Body, nil
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	body, err := c.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return io.ReadAll(body)
}

// GetJSON performs a GET request and decodes the JSON response into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Open(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
