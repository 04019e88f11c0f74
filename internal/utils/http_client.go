package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient with JSON content
// negotiation and no base URL. Each call returns its own resty.Client and
// therefore its own connection pool.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}

// NewAPIClient is NewHTTPClient preconfigured with a base URL and a
// per-request timeout. A zero timeout leaves resty's default (none).
func NewAPIClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := NewHTTPClient()
	client.SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}
