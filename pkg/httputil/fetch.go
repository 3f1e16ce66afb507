package httputil

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/observability"
)

// maxBodySize caps downloads; font files are well under this.
const maxBodySize = 32 << 20

// Fetch performs a GET request and returns the response body. Transient
// failures are retried up to 3 times starting with a 1 second delay.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	return FetchWithRetry(ctx, client, url, 3, time.Second)
}

// FetchWithRetry is [Fetch] with explicit retry settings.
func FetchWithRetry(ctx context.Context, client *http.Client, url string, attempts int, delay time.Duration) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if err := errors.ValidateURL(url); err != nil {
		return nil, err
	}

	var body []byte
	err := Retry(ctx, attempts, delay, func() error {
		data, err := fetchOnce(ctx, client, url)
		if err != nil {
			return err
		}
		body = data
		return nil
	})
	if err != nil {
		var re *RetryableError
		if stderrors.As(err, &re) {
			return nil, errors.Wrap(errors.ErrCodeNetwork, re.Err, "fetch %s", url)
		}
		return nil, err
	}
	return body, nil
}

func fetchOnce(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request for %s", url)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := client.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &RetryableError{Err: err}
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &RetryableError{Err: fmt.Errorf("%s: %s", url, resp.Status)}
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeNotFound, "%s: %s", url, resp.Status)
	default:
		return nil, errors.New(errors.ErrCodeNetwork, "%s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &RetryableError{Err: err}
	}
	return data, nil
}
