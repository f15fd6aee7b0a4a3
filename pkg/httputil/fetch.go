// Package httputil is the outbound HTTP layer: one-shot JSON and body
// fetches with a shared size cap, plus a retry policy for transient
// failures.
//
// Failures are classified on the way out: network errors, 429, and 5xx
// responses satisfy [IsTransient] and are candidates for
// [RetryPolicy.Do]; other non-2xx statuses are permanent. Asset fetches
// retry under [DefaultRetry]; catalog loads deliberately do not, since
// a failed load leaves the catalog unloaded for the next Load to repeat.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds one-shot fetches when the caller passes no client.
const DefaultTimeout = 15 * time.Second

// maxBodySize caps response bodies read into memory. Catalog listings and
// SVG assets are small; anything larger is a misbehaving endpoint.
const maxBodySize = 8 << 20 // 8 MiB

// GetJSON performs a GET request and decodes the JSON response body into v.
// Non-2xx statuses are errors. If client is nil, a client with
// [DefaultTimeout] is used.
func GetJSON(ctx context.Context, client *http.Client, url string, v any) error {
	body, err := GetBody(ctx, client, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// GetBody performs a GET request and returns the response body.
// Non-2xx statuses are errors; bodies are capped at 8 MiB.
func GetBody(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &transientError{fmt.Errorf("fetch %s: %w", url, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, &transientError{err}
		}
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &transientError{fmt.Errorf("read %s: %w", url, err)}
	}
	return body, nil
}
