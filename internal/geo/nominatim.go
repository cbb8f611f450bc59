// Package geo contains the clients for the public geocoding and weather
// services. Both are best-effort collaborators: callers treat any error as
// "enrichment unavailable" and degrade gracefully.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jengzang/trek-backend-go/internal/models"
)

// GeocodeClient resolves free-text locations to coordinates through the
// OpenStreetMap Nominatim API
type GeocodeClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewGeocodeClient creates a geocoding client. Nominatim requires a
// client-identifying User-Agent header.
func NewGeocodeClient(baseURL, userAgent string, timeout time.Duration) *GeocodeClient {
	return &GeocodeClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Geocode resolves a free-text location. Returns (nil, nil) when the
// service has no match for the query.
func (c *GeocodeClient) Geocode(ctx context.Context, location string) (*models.Coordinates, error) {
	params := url.Values{}
	params.Add("format", "json")
	params.Add("q", location)

	endpoint := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API error (status %d): %s", resp.StatusCode, string(body))
	}

	// Nominatim returns lat/lon as strings
	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}

	return &models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
