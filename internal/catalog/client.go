package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/storefront/internal/model"
)

// Request constants
const (
	RequestIDHeader = "X-Request-ID"
	RequestIDPrefix = "storefront-"
	MaxBodyBytes    = 8 << 20
)

// Client reads the product list from the catalog endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new catalog client for endpoint
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured endpoint URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchItems issues one GET and decodes the item list.
// No retry and no timeout: cancellation only comes from ctx.
func (c *Client) FetchItems(ctx context.Context) ([]model.Item, error) {
	if c.endpoint == "" {
		return nil, networkError(ErrNoEndpoint)
	}

	requestID := generateRequestID()
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, networkError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	log.Printf("Catalog fetch started: request_id=%s endpoint=%s", requestID, c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Catalog fetch failed: request_id=%s err=%v", requestID, err)
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Catalog fetch failed: request_id=%s status=%d", requestID, resp.StatusCode)
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodyBytes))
		return nil, statusError(resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		log.Printf("Catalog fetch failed reading body: request_id=%s err=%v", requestID, err)
		return nil, networkError(fmt.Errorf("read body: %w", err))
	}
	if len(body) > MaxBodyBytes {
		return nil, parseError(errors.New("response body too large"))
	}

	items, err := decodeItems(body)
	if err != nil {
		log.Printf("Catalog fetch failed decoding: request_id=%s err=%v", requestID, err)
		return nil, parseError(err)
	}

	log.Printf("Catalog fetch completed: request_id=%s items=%d elapsed=%s",
		requestID, len(items), time.Since(started).Round(time.Millisecond))
	return items, nil
}

// generateRequestID generates a time-ordered id for request correlation
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RequestIDPrefix+"%d", time.Now().UnixNano())
	}
	return RequestIDPrefix + id.String()
}
