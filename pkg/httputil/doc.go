// Package httputil provides HTTP utilities for fetching remote assets.
//
// # Overview
//
// This package provides the infrastructure used by the font downloader:
//
//   - [Fetch]: GET a URL and classify failures
//   - [Retry]: Automatic retry with exponential backoff
//
// # Retry
//
// [Retry] re-runs an operation for transient failures only. Wrap an error in
// [RetryableError] to mark it transient; [Fetch] does this for:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Other failures (404, 403, malformed URLs) are returned immediately:
//
//	data, err := httputil.Fetch(ctx, http.DefaultClient, url)
//
// [Fetch] already retries 3 times starting at a 1 second delay, doubling up
// to 30 seconds; callers
// should not wrap it again.
package httputil
