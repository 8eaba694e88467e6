package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxBodyBytes caps downloads; portraits larger than this are not worth waiting for.
const MaxBodyBytes = 20 << 20

// GetBytes fetches url with the given timeout. Non-2xx responses are errors.
func GetBytes(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	client := http.Client{Timeout: timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
}
