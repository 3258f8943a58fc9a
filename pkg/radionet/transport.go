package radionet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// maxErrorBody caps how much of an error response body ends up in *Error.
const maxErrorBody = 256

// get makes a GET request to the radio.net API and decodes the JSON body into out.
//
// It handles:
// - Request construction with the accept-language and user-agent headers
// - Response parsing (JSON)
// - Empty and null payloads (ErrEmptyResponse)
// - Retry with exponential backoff when MaxRetries > 1
// - Context cancellation
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var lastErr error
	backoff := 500 * time.Millisecond

	for i := 0; i < c.maxRetries; i++ {
		c.logDebugf("radionet: GET %s (attempt %d/%d)", reqURL, i+1, c.maxRetries)

		body, err := c.do(ctx, reqURL)
		if err == nil {
			if err := decode(body, out); err != nil {
				return err
			}
			c.logDebugf("radionet: GET %s succeeded", path)
			return nil
		}

		lastErr = err
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !isRetryableError(err) || i == c.maxRetries-1 {
			break
		}

		c.logDebugf("radionet: retrying %s: %v", path, err)
		if !sleep(ctx, backoff) {
			return ctx.Err()
		}
		backoff = nextBackoff(backoff)
	}

	if c.maxRetries > 1 && isRetryableError(lastErr) {
		return fmt.Errorf("max retries exceeded: %w", lastErr)
	}
	return lastErr
}

// do performs a single request and returns the raw body of a 2xx response.
func (c *Client) do(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.Language())
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := string(bytes.TrimSpace(body))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	return body, nil
}

// decode unmarshals a JSON body, mapping empty and null payloads to ErrEmptyResponse.
func decode(body []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}

// shouldRetryNetworkError checks if a network error is retryable.
func shouldRetryNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// sleep waits for the specified duration or until context is cancelled.
// Returns true if sleep completed, false if context was cancelled.
func sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(duration):
		return true
	}
}

// nextBackoff calculates the next backoff duration with exponential increase.
// Maximum backoff is capped at 10 seconds.
func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > 10*time.Second {
		return 10 * time.Second
	}
	return next
}
