// Package httpclient builds the HTTP client used to query the IP echo service.
package httpclient

import (
	"fmt"
	"net/http"
	"time"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DebugLogger

type DebugLogger interface {
	Debug(s string)
}

// New returns an HTTP client bounding each request to timeout.
// If debug is true, each request and response is logged through logger.
func New(timeout time.Duration, debug bool, logger DebugLogger) *http.Client {
	client := &http.Client{Timeout: timeout}
	if !debug {
		return client
	}
	return makeLogClient(client, logger)
}

func makeLogClient(client *http.Client, logger DebugLogger) (newClient *http.Client) {
	newClient = &http.Client{
		Timeout: client.Timeout,
	}

	originalTransport := client.Transport
	if originalTransport == nil {
		originalTransport = http.DefaultTransport
	}

	transport, ok := originalTransport.(*http.Transport)
	if !ok {
		panic(fmt.Sprintf("transport %T is not *http.Transport", originalTransport))
	}

	newClient.Transport = &loggingRoundTripper{
		proxied: transport.Clone(),
		logger:  logger,
	}

	return newClient
}
