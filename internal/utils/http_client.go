package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(3 * time.Second)
//	resp, err := client.R().Get("https://example.com/avatar.png")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client with the given per-request timeout.
// Redirects follow the net/http default policy and
// retries are disabled: a failed probe is simply a miss.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", "go-contact-book/image-probe")

	return &HTTPClient{Client: client}
}
