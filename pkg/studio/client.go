// Package studio is a typed client for the studio backend API. It mirrors
// the data layer of the site: a configured handle, a session holder for
// auth state, and cached portfolio/booking stores that mutate their local
// copies only after the remote call has succeeded.
package studio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is the configured handle to the backend. Base URL and API key
// are both required; everything else hangs off the client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	tokens     TokenStore

	session   *SessionHolder
	portfolio *PortfolioStore
	bookings  *BookingStore
}

type Option func(*Client)

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenStore overrides where the session tokens persist.
func WithTokenStore(ts TokenStore) Option {
	return func(c *Client) { c.tokens = ts }
}

// New builds a client. A missing base URL or API key is a configuration
// error and fatal to the caller.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" || apiKey == "" {
		return nil, errors.New("studio: base URL and API key are required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
		tokens:     NewMemoryTokenStore(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.session = newSessionHolder(c)
	c.portfolio = newPortfolioStore(c)
	c.bookings = newBookingStore(c)
	return c, nil
}

func (c *Client) Session() *SessionHolder    { return c.session }
func (c *Client) Portfolio() *PortfolioStore { return c.portfolio }
func (c *Client) Bookings() *BookingStore    { return c.bookings }

// APIError is the JSON error envelope the backend returns.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("studio: %s (status %d)", e.Message, e.Status)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// do performs one API call. When authed is true the persisted access
// token is attached. The response body is decoded into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("studio: encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("studio: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	if authed {
		tokens, err := c.tokens.Load()
		if err == nil && tokens.AccessToken != "" {
			req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("studio: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}
		var envelope struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("studio: decode response: %w", err)
		}
	}
	return nil
}
