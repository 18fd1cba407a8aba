// Package fetcher downloads the server list.
package fetcher

//
// getraw.go - GET a raw response.
//

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// ErrRequestFailed indicates that the server responded with a non-2xx status.
var ErrRequestFailed = errors.New("fetcher: request failed")

// FetchError is the error returned by [GetRaw].
type FetchError struct {
	// URL is the URL we were fetching.
	URL string

	// StatusCode is the HTTP status code or zero when
	// we did not receive any response.
	StatusCode int

	// Err is the underlying error.
	Err error
}

// Error implements error.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("cannot fetch %s: %s (status %d)", e.URL, e.Err.Error(), e.StatusCode)
	}
	return fmt.Sprintf("cannot fetch %s: %s", e.URL, e.Err.Error())
}

// Unwrap allows using errors.Is and errors.As.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// GetRaw sends a GET request and reads a raw response.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - URL is the URL to fetch;
//
// - config is the config to use.
//
// This function either returns a *FetchError or the response body.
func GetRaw(ctx context.Context, URL string, config *Config) ([]byte, error) {
	data, code, err := getRaw(ctx, URL, config)
	if err != nil {
		return nil, &FetchError{URL: URL, StatusCode: code, Err: err}
	}
	return data, nil
}

func getRaw(ctx context.Context, URL string, config *Config) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, config.timeout())
	defer cancel()

	// construct the request to use
	req, err := http.NewRequestWithContext(ctx, "GET", URL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", config.UserAgent)

	config.Logger.Debugf("GET %s...", URL)
	resp, err := config.Client.Do(req)
	if err != nil {
		config.Logger.Debugf("GET %s... %s", URL, err.Error())
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		config.Logger.Debugf("GET %s... %d", URL, resp.StatusCode)
		return nil, resp.StatusCode, ErrRequestFailed
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "reading response body")
	}
	config.Logger.Debugf("GET %s... %d (%d bytes)", URL, resp.StatusCode, len(data))
	return data, resp.StatusCode, nil
}
