package utils

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	// UserAgent is sent with every request
	UserAgent = "Security-Scanner/1.0"

	// maxResponseBodySize caps how much of a response body is kept for matching
	maxResponseBodySize = 2 * 1024 * 1024
)

// NewHTTPClient creates a new HTTP client with custom settings.
// Timeouts are applied per request by Session.Do.
func NewHTTPClient(insecure bool) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: insecure, //nolint:gosec
			},
		},
	}
}

// Response is the outcome of one successful request
type Response struct {
	StatusCode int
	Header     http.Header
	Body       string
}

// Session is a shared client plus the default headers sent on every request
type Session struct {
	client  *http.Client
	headers http.Header
}

// NewSession creates a session. A non-empty token adds a bearer Authorization header.
func NewSession(client *http.Client, token string) *Session {
	if client == nil {
		client = NewHTTPClient(false)
	}
	headers := http.Header{}
	headers.Set("User-Agent", UserAgent)
	headers.Set("Content-Type", "application/json")
	if token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}
	return &Session{client: client, headers: headers}
}

// Do performs a single request bounded by timeout and reads the response body.
// Any transport failure, including a timeout, is returned as an error.
func (s *Session) Do(ctx context.Context, method, url string, body io.Reader, timeout time.Duration) (*Response, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	for k, v := range s.headers {
		req.Header[k] = append([]string(nil), v...)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(data),
	}, nil
}

// Get performs a GET request
func (s *Session) Get(ctx context.Context, url string, timeout time.Duration) (*Response, error) {
	return s.Do(ctx, http.MethodGet, url, nil, timeout)
}

// PostJSON encodes payload as JSON and POSTs it
func (s *Session) PostJSON(ctx context.Context, url string, payload interface{}, timeout time.Duration) (*Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding body: %w", err)
	}
	return s.Do(ctx, http.MethodPost, url, bytes.NewReader(data), timeout)
}

// IsTimeout reports whether err came from a request deadline
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
