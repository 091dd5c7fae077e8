package apiclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// PublicClient serves the endpoints that must be reachable before login, such
// as the payment-by-link flow. It never attaches a bearer token and a 401 has
// no side effect, since there is no session to expire.
type PublicClient struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// PublicOption modifies a PublicClient instance.
type PublicOption func(*PublicClient)

// WithPublicHTTPClient replaces the underlying *http.Client.
func WithPublicHTTPClient(httpClient *http.Client) PublicOption {
	return func(c *PublicClient) {
		c.httpClient = httpClient
	}
}

// NewPublic creates an unauthenticated client for the backend at baseURL.
func NewPublic(baseURL string, options ...PublicOption) *PublicClient {
	client := &PublicClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        log.Logger,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

// Get performs a GET request and decodes the JSON response into out.
func (c *PublicClient) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with an optional JSON body.
func (c *PublicClient) Post(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Do performs a single unauthenticated request.
func (c *PublicClient) Do(ctx context.Context, method, path string, body any, out any) error {
	req, err := newJSONRequest(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("request never reached the backend")
		return &APIError{Status: 0, Message: ErrUnreachable.Error()}
	}
	defer resp.Body.Close()

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("request finished")

	if apiErr := classifyResponse(resp); apiErr != nil {
		return apiErr
	}

	return decodeBody(resp.Body, out)
}
