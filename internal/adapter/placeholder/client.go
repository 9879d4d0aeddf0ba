package placeholder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"postboard/internal/domain/model"
	"postboard/internal/domain/ports"
)

const (
	postsPath = "/posts"

	// DefaultLimit is the number of publications kept from the API response.
	DefaultLimit = 20
)

// StatusError is returned when the posts API answers with a non-success status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("network response was not ok: %s", e.Status)
}

// Client fetches publications from a JSONPlaceholder-style posts API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limit      int
	logger     ports.Logger
}

var _ ports.PublicationProvider = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New builds a Client for the API rooted at baseURL.
func New(baseURL string, timeout time.Duration, limit int, logger ports.Logger, opts ...Option) *Client {
	if limit <= 0 {
		limit = DefaultLimit
	}
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limit:      limit,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetPublications returns the first publications of the posts endpoint in API order.
func (c *Client) GetPublications(ctx context.Context) ([]model.Publication, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+postsPath, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var payload []model.Publication
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("decode response: unexpected data after JSON array")
	}

	if len(payload) > c.limit {
		payload = payload[:c.limit]
	}

	publications := make([]model.Publication, len(payload))
	copy(publications, payload)
	return publications, nil
}

// FetchPublications is GetPublications with failures logged and turned into an empty result.
func (c *Client) FetchPublications(ctx context.Context) []model.Publication {
	publications, err := c.GetPublications(ctx)
	if err != nil {
		if c.logger != nil {
			c.logger.Error(ctx, "error fetching publications", "error", err, "url", c.baseURL+postsPath)
		}
		return []model.Publication{}
	}
	return publications
}
