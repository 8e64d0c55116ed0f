// Package api provides a Go client for the Test Case Generator HTTP API.
// All outbound traffic goes through Client.doJSON, which attaches the bearer
// token and normalizes error responses into *APIError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// DefaultBaseURL is used when no API URL is configured.
const DefaultBaseURL = "http://localhost:8000"

// apiPrefix is prepended to every path.
const apiPrefix = "/api/v1"

// TokenSource supplies the current access token, or "" when the client is
// unauthenticated. The credential store implements it.
type TokenSource interface {
	AccessToken() string
}

// APIError is a non-2xx response normalized into a typed failure. Message is
// the server's detail text when the body carried one, otherwise a generic
// "HTTP error <status>" string.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string { return e.Message }

// IsStatus reports whether err is an *APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// Client calls the Test Case Generator HTTP API. It is safe for concurrent
// use. Tokens is optional; when nil or empty, requests go out without an
// Authorization header (login, register, and refresh need none).
type Client struct {
	BaseURL    string       // e.g. "http://localhost:8000"
	Tokens     TokenSource  // optional; supplies the bearer token
	HTTPClient *http.Client // optional; nil uses http.DefaultClient
	Logger     *slog.Logger // optional; debug-logs each request
}

// New returns a client for the given base URL.
func New(baseURL string, tokens TokenSource) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{BaseURL: baseURL, Tokens: tokens}
}

func (c *Client) client() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// newRequest builds one authenticated request. contentType may be empty for
// bodyless calls; non-JSON callers (the multipart upload) pass their own.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+apiPrefix+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Tokens != nil {
		if tok := c.Tokens.AccessToken(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	if c.Logger != nil {
		c.Logger.Debug("api request", "method", method, "path", path)
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	contentType := ""
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(b)
		contentType = "application/json"
	}
	req, err := c.newRequest(ctx, method, path, bodyReader, contentType)
	if err != nil {
		return nil, err
	}
	resp, err := c.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// decode turns a response into out (out may be nil). Non-2xx responses become
// *APIError; a malformed error body falls back to a generic message instead
// of failing the decode. The caller owns resp.Body.
func (c *Client) decode(method, path string, resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		msg := errBody.Detail
		if msg == "" {
			msg = fmt.Sprintf("HTTP error %d", resp.StatusCode)
		}
		if c.Logger != nil {
			c.Logger.Debug("api error", "method", method, "path", path, "status", resp.StatusCode, "detail", errBody.Detail)
		}
		return &APIError{Message: msg, StatusCode: resp.StatusCode}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// doJSON performs one JSON call end to end.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	return c.decode(method, path, resp, out)
}
