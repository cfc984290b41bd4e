package http

import (
	"net/http"
	"time"
)

// Fetcher obtains the public IP address of the caller by querying
// a single IP echo HTTP(s) endpoint.
type Fetcher struct {
	client    *http.Client
	url       string
	timeout   time.Duration
	userAgent string
}

func New(client *http.Client, options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	return &Fetcher{
		client:    client,
		url:       settings.url,
		timeout:   settings.timeout,
		userAgent: settings.userAgent,
	}, nil
}

// URL returns the IP echo endpoint the fetcher queries.
func (f *Fetcher) URL() string {
	return f.url
}
