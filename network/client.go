// Package network provides pre-configured HTTP clients shared across the application.
package network

import (
	"net/http"
	"time"
)

// Client is the shared HTTP client for provider search API calls.
// Search requests are small JSON payloads, so a tight timeout keeps a dead
// provider from stalling the whole run.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: newTransport(),
}

// Download is the HTTP client used for binary file transfers.
// Video payloads are large; the longer timeout covers the full body read.
var Download = &http.Client{
	Timeout:   60 * time.Second,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
