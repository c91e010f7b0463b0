// Package gitlab provides a REST client for the GitLab v4 API.
// It implements a deep module interface - simple methods hiding the raw
// endpoint, header, and pagination plumbing.
package gitlab

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// apiPrefix is the versioned API root appended to every instance base URL.
const apiPrefix = "/api/v4/"

// HTTPClient is the transport interface the client depends on.
// *http.Client satisfies it; tests inject a scripted implementation.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a GitLab REST API client bound to one instance.
// One Client is created per (instance, token) pair; it is safe to reuse for
// every call against that instance within a run.
type Client struct {
	baseURL    string
	token      string
	httpClient HTTPClient
}

// New creates a client for the given instance base URL and private token.
// The injected HTTPClient allows mocking in tests; pass http.DefaultClient
// for real use.
func New(baseURL, token string, httpClient HTTPClient) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
	}
}

// Route builds a fully-qualified API URL from an instance base URL and a
// relative resource path. Exactly one trailing slash is stripped from the
// base URL before the versioned prefix is appended. Callers must not route
// an already-routed URL.
func Route(baseURL, relativePath string) string {
	return strings.TrimSuffix(baseURL, "/") + apiPrefix + relativePath
}

// do performs one authenticated round-trip against the instance and returns
// the raw response body. Any transport failure or non-2xx status is returned
// as an error; there are no retries and no timeout beyond transport defaults.
func (c *Client) do(ctx context.Context, method, relativePath string) ([]byte, error) {
	url := Route(c.baseURL, relativePath)

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("PRIVATE-TOKEN", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s returned status %d: %s", method, relativePath, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}
