package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-voice-keeper"

// HTTPClient embeds *resty.Client so callers use its request builder
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with the given request
// timeout (zero means none) and the voice-keeper User-Agent.
//
//	client := utils.NewHTTPClient(30 * time.Second)
//	resp, err := client.R().SetContext(ctx).Get(presignedURL)
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)
	return &HTTPClient{Client: client}
}
