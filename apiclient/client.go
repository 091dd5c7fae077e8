// Package apiclient performs authenticated (or public) JSON HTTP calls against
// the parking backend and normalises every failure mode into one error shape.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json"

// TokenSource yields the bearer token attached to outgoing requests.
// The second return value reports whether a token currently exists.
type TokenSource interface {
	Token() (string, bool)
}

// Client is the authenticated JSON client. A 401 from any endpoint tears the
// session down through the injected on-session-expired hook before the error
// is returned, so no caller ever observes a stale authenticated state.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	tokens           TokenSource
	onSessionExpired func()
	log              zerolog.Logger
}

// Option modifies a Client instance.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (primarily for testing).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithOnSessionExpired sets the hook invoked synchronously when any call
// returns 401. The composition root points it at the session teardown and the
// login redirect.
func WithOnSessionExpired(hook func()) Option {
	return func(c *Client) {
		c.onSessionExpired = hook
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.log = logger
	}
}

// New creates an authenticated client for the backend at baseURL.
func New(baseURL string, tokens TokenSource, options ...Option) (*Client, error) {
	if tokens == nil {
		return nil, errors.New("[New] token source is required")
	}

	client := &Client{
		baseURL:          strings.TrimRight(baseURL, "/"),
		httpClient:       &http.Client{},
		tokens:           tokens,
		onSessionExpired: func() {},
		log:              log.Logger,
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do performs a single request. It never retries: every failure is surfaced
// once to the caller as an *APIError.
func (c *Client) Do(ctx context.Context, method, path string, body any, out any) error {
	req, err := newJSONRequest(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "[Do] build request")
	}

	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("request never reached the backend")
		return &APIError{Status: 0, Message: ErrUnreachable.Error()}
	}
	defer resp.Body.Close()

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("request finished")

	if resp.StatusCode == http.StatusUnauthorized {
		// The teardown must complete before the caller sees the error.
		c.onSessionExpired()
		return &APIError{Status: http.StatusUnauthorized, Message: ErrSessionExpired.Error()}
	}

	if apiErr := classifyResponse(resp); apiErr != nil {
		return apiErr
	}

	return decodeBody(resp.Body, out)
}

// newJSONRequest builds a request with the JSON content type and a request ID
// for correlation on the backend side.
func newJSONRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "json.Marshal body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.Wrap(err, "http.NewRequestWithContext")
	}

	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// classifyResponse maps a finished non-2xx response onto the error taxonomy.
// Returns nil for 2xx responses.
func classifyResponse(resp *http.Response) *APIError {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusForbidden:
		return &APIError{Status: resp.StatusCode, Message: ErrForbidden.Error()}
	case resp.StatusCode == http.StatusNotFound:
		return &APIError{Status: resp.StatusCode, Message: ErrNotFound.Error()}
	case resp.StatusCode >= 500:
		return &APIError{Status: resp.StatusCode, Message: ErrServer.Error()}
	}

	// Remaining 4xx carry a human message in the body when the backend has one.
	var errorBody struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errorBody); err != nil || errorBody.Message == "" {
		errorBody.Message = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: errorBody.Message}
}

func decodeBody(body io.Reader, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, body)
		return nil
	}
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response body")
	}
	return nil
}
