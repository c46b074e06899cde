package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPTransport implements ports.Transport over net/http.
type HTTPTransport struct {
	client HTTPClient
	log    zerolog.Logger
}

// NewHTTPTransport creates an outbound delivery transport. timeout bounds
// the whole request including body read.
func NewHTTPTransport(timeout time.Duration, log zerolog.Logger) *HTTPTransport {
	return &HTTPTransport{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// NewHTTPTransportWithClient creates a transport with a caller-supplied client.
func NewHTTPTransportWithClient(client HTTPClient, log zerolog.Logger) *HTTPTransport {
	return &HTTPTransport{client: client, log: log}
}

// Send POSTs body to url with the given headers and returns the response
// status code.
func (t *HTTPTransport) Send(ctx context.Context, url string, body []byte, headers map[string]string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("building delivery request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("delivering to %s: %w", url, err)
	}
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return resp.StatusCode, nil
}

// Head probes url and returns the response status code.
func (t *HTTPTransport) Head(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building probe request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("probing %s: %w", url, err)
	}
	resp.Body.Close()

	return resp.StatusCode, nil
}
