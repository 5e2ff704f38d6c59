// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package client is the programmatic consumer of the SkillForge API.
// It attaches the bearer token from its TokenStore to every request,
// retries exactly once after a token refresh when the backend answers
// 401, and normalizes failures into three shapes: ErrAuthRequired,
// *HTTPError, and *NetworkError.
//
// Concurrent requests that need a token refresh share a single
// validation call through a singleflight group; everything else runs
// independently.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// validatePath is the backend endpoint that checks whether a token is
// still accepted.
const validatePath = "/auth/validate"

// Client issues JSON requests against one API origin. Construct one per
// origin; the zero value is not usable.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	refresh singleflight.Group
}

// New creates a client for the given base URL. The TokenStore supplies
// the bearer token; pass NewMemStore("") for purely unauthenticated use.
func New(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
	}
}

// requestOptions collects per-request settings.
type requestOptions struct {
	skipAuth bool
	headers  map[string]string
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

// WithoutAuth skips bearer-token injection entirely. Used for public
// endpoints such as the contact form.
func WithoutAuth() RequestOption {
	return func(o *requestOptions) { o.skipAuth = true }
}

// WithHeader sets an extra request header, overriding the defaults on
// collision.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.request(ctx, http.MethodGet, path, nil, out, opts)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.request(ctx, http.MethodPost, path, body, out, opts)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.request(ctx, http.MethodPut, path, body, out, opts)
}

// Patch issues a PATCH request with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.request(ctx, http.MethodPatch, path, body, out, opts)
}

// Delete issues a DELETE request and decodes the response into out (which
// may be nil).
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.request(ctx, http.MethodDelete, path, nil, out, opts)
}

func (c *Client) request(ctx context.Context, method, path string, body, out any, opts []RequestOption) error {
	var ro requestOptions
	for _, opt := range opts {
		opt(&ro)
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = b
	}

	return c.do(ctx, method, path, payload, out, ro, 0)
}

// do performs one attempt, recursing at most once (retryCount 0 → 1)
// through the 401 refresh path.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any, ro requestOptions, retryCount int) error {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolveURL(path), reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range ro.headers {
		req.Header.Set(k, v)
	}

	if !ro.skipAuth {
		token, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		if token == "" && retryCount == 0 {
			// No stored token yet — see whether the refresh flow can
			// produce one before going out unauthenticated.
			token, err = c.refreshToken(ctx)
			if err != nil {
				return err
			}
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// The request never produced an HTTP response. The stored token
		// is deliberately left alone here.
		return &NetworkError{Err: err}
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return decodeResponse(resp, respBody, out)
	}

	if resp.StatusCode == http.StatusUnauthorized && !ro.skipAuth && retryCount == 0 {
		token, err := c.refreshToken(ctx)
		if err != nil {
			return err
		}
		if token != "" {
			return c.do(ctx, method, path, payload, out, ro, retryCount+1)
		}
		// The refresh produced nothing usable; drop the credential so the
		// caller re-authenticates.
		if err := c.tokens.Clear(); err != nil {
			return fmt.Errorf("clear token: %w", err)
		}
		return ErrAuthRequired
	}

	return &HTTPError{
		StatusCode: resp.StatusCode,
		Message:    errorMessage(respBody),
	}
}

// refreshToken coalesces concurrent refresh attempts into a single
// validation call; every waiter receives the same outcome.
func (c *Client) refreshToken(ctx context.Context) (string, error) {
	v, err, _ := c.refresh.Do("validate", func() (any, error) {
		return c.validate(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// validate checks the stored token against the backend. The backend
// does not rotate tokens: a 2xx means the current token is still good.
// Only an explicit 401 invalidates it — transport failures and 5xx
// responses keep the token, since a flaky backend should not force a
// logout.
func (c *Client) validate(ctx context.Context) (string, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+validatePath, nil)
	if err != nil {
		return "", fmt.Errorf("build validate request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return token, nil
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return token, nil
	case resp.StatusCode == http.StatusUnauthorized:
		if err := c.tokens.Clear(); err != nil {
			return "", fmt.Errorf("clear token: %w", err)
		}
		return "", nil
	default:
		return token, nil
	}
}

// resolveURL prefixes relative endpoints with the base URL; absolute
// URLs pass through untouched.
func (c *Client) resolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// decodeResponse fills out from a successful response: JSON bodies are
// unmarshaled, anything else is handed over as raw text when out is a
// *string.
func decodeResponse(resp *http.Response, body []byte, out any) error {
	if out == nil {
		return nil
	}

	ct := resp.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		if len(bytes.TrimSpace(body)) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	if sp, ok := out.(*string); ok {
		*sp = string(body)
		return nil
	}
	return fmt.Errorf("unexpected content type %q", ct)
}

// errorMessage extracts the "error" field from a JSON error body.
// Returns empty when the body isn't that shape, leaving HTTPError to
// fall back to its generic message.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}
