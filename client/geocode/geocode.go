// Package geocode resolves street addresses to coordinates through the
// Google Geocoding API so listings can be pinned on a map.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com"

var (
	ErrNoResults = errors.New("endereço não encontrado")
	ErrDenied    = errors.New("chave de API recusada")
	ErrOverLimit = errors.New("limite de consultas excedido")
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	mu       sync.Mutex
	inflight map[string]*call
}

type call struct {
	done   chan struct{}
	coords *Coordinates
	err    error
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		inflight:   make(map[string]*call),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve geocodes an address. Concurrent lookups for the same address
// string collapse into one upstream request; latecomers wait for and
// share its result.
func (c *Client) Resolve(ctx context.Context, address string) (*Coordinates, error) {
	key := strings.TrimSpace(address)
	if key == "" {
		return nil, ErrNoResults
	}

	c.mu.Lock()
	if existing, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-existing.done:
			return existing.coords, existing.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	cl := &call{done: make(chan struct{})}
	c.inflight[key] = cl
	c.mu.Unlock()

	cl.coords, cl.err = c.fetch(ctx, key)
	close(cl.done)

	c.mu.Lock()
	delete(c.inflight, key)
	c.mu.Unlock()

	return cl.coords, cl.err
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *Client) fetch(ctx context.Context, address string) (*Coordinates, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)

	reqURL := c.baseURL + "/maps/api/geocode/json?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	switch body.Status {
	case "OK":
		if len(body.Results) == 0 {
			return nil, ErrNoResults
		}
		loc := body.Results[0].Geometry.Location
		return &loc, nil
	case "ZERO_RESULTS":
		return nil, ErrNoResults
	case "REQUEST_DENIED":
		return nil, ErrDenied
	case "OVER_QUERY_LIMIT":
		return nil, ErrOverLimit
	default:
		return nil, fmt.Errorf("geocoding failed with status %s", body.Status)
	}
}
