package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrFetch matches every *FetchError via errors.Is.
var ErrFetch = errors.New("fetch failed")

// FetchError reports a failed page request. StatusCode is zero for transport failures.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// Fetcher issues a single GET per page. There is no retry and no cache.
type Fetcher struct {
	client    *http.Client
	userAgent string
	lenient   bool
}

// Option customises a Fetcher.
type Option func(*Fetcher)

// WithClient replaces the HTTP client (its Timeout is overridden by NewFetcher's timeout).
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithLenientStatus makes non-2xx responses return their body instead of an error.
func WithLenientStatus() Option {
	return func(f *Fetcher) { f.lenient = true }
}

func NewFetcher(userAgent string, timeout time.Duration, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{},
		userAgent: userAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client.Timeout = timeout
	return f
}

// GetHtmlBytes performs the request and returns the raw response body.
func (f *Fetcher) GetHtmlBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if !f.lenient && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return nil, &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return bodyBytes, nil
}
