// Package geocode resolves free-text addresses to coordinates via a
// Nominatim-compatible search API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/WiL-dev/econstruct/internal/model"
)

// userAgentTransport sets a User-Agent on every request. Nominatim rejects
// clients without one.
type userAgentTransport struct {
	transport http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.transport.RoundTrip(req)
}

// Client queries a Nominatim-compatible search endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Transport: &userAgentTransport{
				transport: http.DefaultTransport,
				userAgent: userAgent,
			},
			Timeout: timeout,
		},
	}
}

// searchResult is the subset of the Nominatim response we consume.
// Nominatim returns lat/lon as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Search resolves a query to its best-ranked coordinate. An empty result set
// is an error; there are no retries and no result correction.
func (c *Client) Search(ctx context.Context, query string) (model.Coordinate, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("building geocode request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Coordinate{}, fmt.Errorf("geocode request: unexpected status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return model.Coordinate{}, fmt.Errorf("decoding geocode response: %w", err)
	}
	if len(results) == 0 {
		return model.Coordinate{}, fmt.Errorf("no results for %q", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("parsing latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("parsing longitude %q: %w", results[0].Lon, err)
	}

	return model.Coordinate{Lat: lat, Lon: lon, Label: results[0].DisplayName}, nil
}
