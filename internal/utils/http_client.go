package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client preconfigured for talking to
// the auth API: base URL, timeout and JSON headers.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().Get("/api/me")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client rooted at baseURL. A zero
// timeout leaves resty's default (no timeout) in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}

// WithToken returns a request carrying a bearer token when token is not
// empty.
func (c *HTTPClient) WithToken(token string) *resty.Request {
	r := c.R()
	if token != "" {
		r.SetAuthToken(token)
	}
	return r
}
