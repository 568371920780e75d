package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/community-pulse/cli/internal/session"
	"github.com/rs/zerolog"
)

// Client talks to the Community Pulse REST service. It exposes one
// method per remote capability, attaches the stored bearer token where
// an operation calls for one, and normalizes every failure into *Error.
//
// The client neither retries nor recovers: every failure propagates to
// the caller, and no operation is guarded against in-flight overlap.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *session.Store
	log        zerolog.Logger
}

// NewClient constructs a Client for the service at baseURL. A zero
// timeout leaves requests bounded only by their context.
func NewClient(baseURL string, sessions *session.Store, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		sessions:   sessions,
		log:        log,
	}
}

// Sessions exposes the session store backing this client.
func (c *Client) Sessions() *session.Store {
	return c.sessions
}

// bearer returns the stored token, or empty when unauthenticated.
func (c *Client) bearer(ctx context.Context) string {
	token, _ := c.sessions.Token(ctx)
	return token
}

// do issues one request and decodes a 2xx body into out when out is
// non-nil. A non-empty token is attached as an Authorization header.
// Transport failures and non-2xx responses both surface as *Error, the
// latter carrying the server's detail message when present.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fallback}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Message: fallback}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return &Error{Message: fallback}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.Body, fallback)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Message: fallback}
	}
	return nil
}
