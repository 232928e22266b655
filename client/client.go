// Package client is a typed HTTP client for the Imovel Hub API, used by
// admin tooling. It keeps a session (access plus refresh token) and
// transparently retries a request once after refreshing an expired
// access token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"imovel-hub/internal/entity"
	"imovel-hub/internal/httperr"
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type loginResponse struct {
	Message      string          `json:"message"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	User         *entity.Usuario `json:"user"`
}

// Login authenticates and stores the session tokens on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.Usuario, error) {
	var resp loginResponse
	err := c.doOnce(ctx, http.MethodPost, "/api/login", jsonBody(map[string]string{
		"email":    email,
		"password": password,
	}), "application/json", &resp, false)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.accessToken = resp.AccessToken
	c.refreshToken = resp.RefreshToken
	c.mu.Unlock()

	return resp.User, nil
}

// Refresh trades the stored refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context) error {
	c.mu.Lock()
	refresh := c.refreshToken
	c.mu.Unlock()
	if refresh == "" {
		return fmt.Errorf("no session: login first")
	}

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	err := c.doOnce(ctx, http.MethodPost, "/api/refresh", jsonBody(map[string]string{
		"refreshToken": refresh,
	}), "application/json", &resp, false)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.accessToken = resp.AccessToken
	c.mu.Unlock()
	return nil
}

// Authenticated reports whether a session is currently held.
func (c *Client) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken != ""
}

func (c *Client) Logout() {
	c.mu.Lock()
	c.accessToken = ""
	c.refreshToken = ""
	c.mu.Unlock()
}

type bodyFunc func() (io.Reader, error)

func jsonBody(v any) bodyFunc {
	return func() (io.Reader, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(b), nil
	}
}

// do issues an authenticated request; on a 401 it refreshes the access
// token once and replays the request.
func (c *Client) do(ctx context.Context, method, path string, body bodyFunc, contentType string, out any) error {
	err := c.doOnce(ctx, method, path, body, contentType, out, true)

	var apiErr *httperr.Error
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		if refreshErr := c.Refresh(ctx); refreshErr != nil {
			return err
		}
		return c.doOnce(ctx, method, path, body, contentType, out, true)
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, path string, body bodyFunc, contentType string, out any, auth bool) error {
	var reader io.Reader
	if body != nil {
		var err error
		reader, err = body()
		if err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if contentType != "" && reader != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if auth {
		c.mu.Lock()
		token := c.accessToken
		c.mu.Unlock()
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := &httperr.Error{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Err == "" {
		apiErr.Err = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func pathf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
