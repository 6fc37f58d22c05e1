// Package matching provides the HTTP client for the technician matching
// system. Matching owns geo-search and offer fan-out; the lifecycle engine
// only asks it to broadcast a booking and reports how many technicians were
// reached.
package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fieldops/internal/core/domain/model/kernel"
)

const requestTimeout = 10 * time.Second

// Client implements ports.MatchingService against the matching system's REST
// API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a matching client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type broadcastResponse struct {
	Notified int `json:"notified"`
}

// Broadcast asks matching to offer the booking to nearby technicians.
// Returns how many technicians the offer reached.
func (c *Client) Broadcast(ctx context.Context, bookingID kernel.UUID) (int, error) {
	if err := bookingID.Validate(); err != nil {
		return 0, err
	}

	url := fmt.Sprintf("%s/v1/bookings/%s/broadcast", c.baseURL, bookingID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("matching broadcast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("matching broadcast returned status %d", resp.StatusCode)
	}

	var body broadcastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode broadcast response: %w", err)
	}

	return body.Notified, nil
}
