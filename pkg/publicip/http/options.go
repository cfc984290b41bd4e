package http

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// DefaultURL is the IP echo endpoint used when no URL is set.
const DefaultURL = "https://api.ipify.org"

type settings struct {
	url       string
	timeout   time.Duration
	userAgent string
}

func newDefaultSettings() settings {
	const defaultTimeout = 5 * time.Second
	return settings{
		url:     DefaultURL,
		timeout: defaultTimeout,
	}
}

type Option func(s *settings) error

var (
	ErrURLNotValid     = errors.New("URL is not valid")
	ErrTimeoutNotValid = errors.New("timeout is not valid")
)

// SetURL sets the IP echo endpoint to query. It must be an
// absolute http or https URL.
func SetURL(rawURL string) Option {
	return func(s *settings) (err error) {
		err = ValidateURL(rawURL)
		if err != nil {
			return err
		}
		s.url = rawURL
		return nil
	}
}

func SetTimeout(timeout time.Duration) Option {
	return func(s *settings) (err error) {
		if timeout <= 0 {
			return fmt.Errorf("%w: %s must be strictly positive",
				ErrTimeoutNotValid, timeout)
		}
		s.timeout = timeout
		return nil
	}
}

// SetUserAgent sets the User-Agent header sent with each request.
// An empty user agent leaves the Go HTTP client default.
func SetUserAgent(userAgent string) Option {
	return func(s *settings) (err error) {
		s.userAgent = userAgent
		return nil
	}
}

func ValidateURL(rawURL string) (err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrURLNotValid, err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%w: scheme %q must be http or https",
			ErrURLNotValid, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%w: host is empty in %q", ErrURLNotValid, rawURL)
	}

	return nil
}
