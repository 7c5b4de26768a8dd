// Package api provides a client for the CODEIT marketplace REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/codeit-cli/codeit/constant"
	"github.com/codeit-cli/codeit/key"
	"github.com/codeit-cli/codeit/log"
	"github.com/codeit-cli/codeit/network"
	"github.com/spf13/viper"
)

// TokenProvider supplies the bearer token for authenticated endpoints.
// It reports false when no session is present.
type TokenProvider func() (string, bool)

// Client talks to the marketplace backend.
// Every response is wrapped in the standard envelope and unwrapped here,
// so callers only ever see decoded domain payloads or errors.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenProvider
}

// NewClient builds a client against the configured base URL.
// The token provider may be nil for anonymous catalog access.
func NewClient(token TokenProvider) *Client {
	return &Client{
		baseURL: viper.GetString(key.APIBaseURL),
		http:    network.Client,
		token:   token,
	}
}

// envelope is the uniform JSON wrapper used by every backend endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Error is a failed API call, carrying the backend's message when present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed with status %d", e.Status)
}

// IsUnauthorized reports whether the call was rejected for a missing or
// expired session.
func (e *Error) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// request performs a call and decodes the envelope's data into out.
// out may be nil when the caller only cares about success.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, network.Timeout())
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token, ok := c.token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	log.Debugf("api: %s %s", method, endpoint)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &Error{Status: resp.StatusCode}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		return &Error{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.request(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.request(ctx, http.MethodPut, path, query, body, out)
}
