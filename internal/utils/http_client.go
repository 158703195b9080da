// Package utils provides small helpers shared across the application:
// the HTTP client used by remote mirrors and the identifier generator for
// vault items.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// userAgent identifies mirror requests in server logs.
const userAgent = "vault-sync/1"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client with the given per-request timeout.
// Redirects are not followed: a mirror that moved must be relinked.
//
// Each call returns an independent client instance with its own
// connection pool.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetRedirectPolicy(resty.NoRedirectPolicy())

	return &HTTPClient{Client: client}
}
