package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrNoIPFound     = errors.New("no IP address found")
	ErrBadHTTPStatus = errors.New("bad HTTP status received")
)

func fetch(ctx context.Context, client *http.Client, url, userAgent string) (
	publicIP string, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	if userAgent != "" {
		request.Header.Set("User-Agent", userAgent)
	}

	response, err := client.Do(request)
	if err != nil {
		return "", fmt.Errorf("doing request: %w", err)
	}
	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body from %q: %w", url, err)
	}

	if err := response.Body.Close(); err != nil {
		return "", err
	}

	const minSuccess, maxSuccess = 200, 299
	if response.StatusCode < minSuccess || response.StatusCode > maxSuccess {
		err = fmt.Errorf("%w: %d %s from %q", ErrBadHTTPStatus,
			response.StatusCode, http.StatusText(response.StatusCode), url)
		if bodyLine := toSingleLine(string(b)); bodyLine != "" {
			err = fmt.Errorf("%w: %s", err, bodyLine)
		}
		return "", err
	}

	publicIP = strings.TrimSpace(string(b))
	if publicIP == "" {
		return "", fmt.Errorf("%w: from %q", ErrNoIPFound, url)
	}

	return publicIP, nil
}

func toSingleLine(s string) (line string) {
	line = strings.ReplaceAll(s, "\n", "")
	line = strings.ReplaceAll(line, "\r", "")
	line = strings.ReplaceAll(line, "  ", " ")
	line = strings.ReplaceAll(line, "  ", " ")
	return line
}
