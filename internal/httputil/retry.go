// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"io"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for backoff on retryable
// responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const defaultMaxAttempts = 3

// retryable reports whether a status code is worth another attempt:
// HTTP 429 (rate limited) and HTTP 503 (provider briefly unavailable).
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

// DoWithRetry executes req and retries retryable responses with linear
// backoff: RetryBaseDelay, 2×, 3×, ... The request context bounds the whole
// sequence, including the backoff waits.
//
// When maxAttempts is 0 the default (3) is used. On each retry the previous
// response body is drained and closed. After exhausting attempts the last
// response is returned as-is so the caller can inspect it. Transport errors
// are not retried; per-URL isolation upstream already treats them as a skip.
func DoWithRetry(client *http.Client, req *http.Request, maxAttempts int) (*http.Response, error) {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	ctx := req.Context()
	for attempt := 1; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if !retryable(resp.StatusCode) || attempt >= maxAttempts {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * RetryBaseDelay):
		}
	}
}
