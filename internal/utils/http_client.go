package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultRPCTimeout    = 5 * time.Second
	defaultRPCRetryCount = 2
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewRPCClient("http://127.0.0.1:8899")
//	resp, err := client.R().SetBody(req).Post("")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewRPCClient returns an HTTPClient preconfigured for JSON-RPC calls against
// endpoint: JSON content type, a bounded per-request timeout and a small
// retry budget for transport errors.
func NewRPCClient(endpoint string) *HTTPClient {
	client := resty.New().
		SetBaseURL(endpoint).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(defaultRPCTimeout).
		SetRetryCount(defaultRPCRetryCount)

	return &HTTPClient{Client: client}
}
