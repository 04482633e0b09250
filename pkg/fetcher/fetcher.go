// Package fetcher retrieves HTML samples over HTTP with retry, timeout, and
// typed failure classification. It is the only I/O boundary of an analysis
// run; the core packages never see the network.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrorKind classifies a fetch failure for callers that branch on cause.
type ErrorKind string

const (
	ErrNetwork ErrorKind = "network"
	ErrHTTP    ErrorKind = "http"
	ErrTimeout ErrorKind = "timeout"
	ErrInvalid ErrorKind = "invalid"
	ErrEmpty   ErrorKind = "empty"
	ErrUnknown ErrorKind = "unknown"
)

// FetchError wraps a failed fetch with its classification.
type FetchError struct {
	Kind ErrorKind
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s failed (%s): %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Fetcher struct {
	client       *retryablehttp.Client
	userAgent    string
	maxBodyBytes int64
}

// NewFetcher builds a fetcher with a per-request timeout, bounded retries
// with backoff, and a response size cap.
func NewFetcher(timeout time.Duration, retryMax int, userAgent string, maxBodyBytes int64) *Fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.RetryWaitMin = 250 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.Logger = nil
	client.HTTPClient.Timeout = timeout

	return &Fetcher{
		client:       client,
		userAgent:    userAgent,
		maxBodyBytes: maxBodyBytes,
	}
}

// Fetch performs one GET and returns the HTML body, or a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{Kind: ErrInvalid, URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{Kind: classifyTransportError(err), URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{
			Kind: ErrHTTP,
			URL:  url,
			Err:  fmt.Errorf("unexpected status code: %d", resp.StatusCode),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "html") && !strings.Contains(contentType, "xml") {
		return "", &FetchError{
			Kind: ErrInvalid,
			URL:  url,
			Err:  fmt.Errorf("non-HTML content type: %s", contentType),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return "", &FetchError{Kind: ErrNetwork, URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if strings.TrimSpace(string(body)) == "" {
		return "", &FetchError{Kind: ErrEmpty, URL: url, Err: errors.New("response body is empty")}
	}

	return string(body), nil
}

// FetchSamples performs n sequential fetches of the same URL, preserving
// fetch order. The first failure aborts the run; proceeding with a reduced
// sample set is a caller decision, not a fetcher one.
func (f *Fetcher) FetchSamples(ctx context.Context, url string, n int) ([]string, error) {
	if n < 1 {
		n = 1
	}

	samples := make([]string, 0, n)
	for i := 0; i < n; i++ {
		html, err := f.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		samples = append(samples, html)
	}
	return samples, nil
}

func classifyTransportError(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrTimeout
		}
		return ErrNetwork
	}
	// retryablehttp wraps the final transport error in a "giving up" message.
	if strings.Contains(err.Error(), "giving up after") || strings.Contains(err.Error(), "connection refused") {
		return ErrNetwork
	}
	return ErrUnknown
}
