// Package client provides the HTTP client for the flight search and
// booking endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/mzielin/kiwibook/pkg/protocol"
)

const (
	defaultTimeout  = 30 * time.Second
	contentTypeJSON = "application/json"
)

// Client is an HTTP client for the flight search and booking APIs.
// Each call opens and completes one request; transport failures are
// terminal and never retried.
type Client struct {
	searchURL  string
	bookingURL string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, primarily for
// tests that need a custom timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the given search and booking endpoint URLs.
func New(searchURL, bookingURL string, opts ...Option) *Client {
	c := &Client{
		searchURL:  searchURL,
		bookingURL: bookingURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SearchFlights performs one GET against the search endpoint with the
// filter as query parameters. An absent or empty candidate array in a
// 2xx response yields an empty slice, not an error.
func (c *Client) SearchFlights(ctx context.Context, filter *protocol.SearchFilter) ([]protocol.Flight, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.URL.RawQuery = filter.Values().Encode()

	var result protocol.SearchResponse
	if err := c.doRequest(req, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// CreateBooking performs one POST against the booking endpoint with the
// booking payload as a JSON body.
func (c *Client) CreateBooking(ctx context.Context, booking *protocol.BookingRequest) (*protocol.BookingResponse, error) {
	body, err := json.Marshal(booking)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.bookingURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create booking request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	var result protocol.BookingResponse
	if err := c.doRequest(req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// doRequest executes an HTTP request, classifies transport failures,
// and decodes a successful JSON response into response.
func (c *Client) doRequest(req *http.Request, response any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}

	respBytes, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return protocol.NewHTTPError(resp.StatusCode, resp.Status)
	}

	if response != nil {
		if err := json.Unmarshal(respBytes, response); err != nil {
			return fmt.Errorf("failed to parse response (invalid JSON): %w", err)
		}
	}

	return nil
}

// classifyTransportError maps a request failure onto the terminal
// error taxonomy: timeouts are distinguished from connection failures,
// everything else counts as a connection failure.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return protocol.NewTimeoutError()
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return protocol.NewTimeoutError()
	}
	return protocol.NewNetworkError()
}
