package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrNotFound maps a downstream 404.
	ErrNotFound = errors.New("upstream resource not found")
	// ErrUnavailable covers transport failures, timeouts and any other
	// non-2xx response. Timeout expiry is deliberately the same failure
	// class as a bad status.
	ErrUnavailable = errors.New("upstream unavailable")
)

// Config is passed explicitly to every client constructor; clients never
// read the environment themselves.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type httpCaller struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

func newHTTPCaller(cfg Config) httpCaller {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return httpCaller{
		baseURL: cfg.BaseURL,
		timeout: timeout,
		client:  &http.Client{},
	}
}

// doJSON performs one downstream round trip: optional JSON body out,
// optional JSON decode in, identity header forwarded when set.
func (h httpCaller) doJSON(ctx context.Context, method, path, username string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if username != "" {
		req.Header.Set("X-User-Name", username)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: %s %s returned %d", ErrUnavailable, method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode %s %s response: %v", ErrUnavailable, method, path, err)
		}
	}

	return nil
}
