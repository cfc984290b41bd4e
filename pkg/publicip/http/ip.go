package http

import (
	"context"
)

// IP queries the IP echo endpoint once and returns its trimmed
// response body. The response is not checked to be a valid IP address.
func (f *Fetcher) IP(ctx context.Context) (publicIP string, err error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	return fetch(ctx, f.client, f.url, f.userAgent)
}
