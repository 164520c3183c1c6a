package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client whose requests carry
// userAgent in the User-Agent header. An empty userAgent keeps resty's
// default.
func NewHTTPClient(userAgent string) *HTTPClient {
	client := resty.New()
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &HTTPClient{Client: client}
}
