// Package geocode looks up a structured address for a coordinate pair
// against a LocationIQ-compatible reverse-geocoding endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"kaikari-xpress/internal/domain"
)

// Reverser resolves coordinates to a postal address.
type Reverser interface {
	Reverse(ctx context.Context, lat, lon float64) (*domain.GeoAddress, error)
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		State    string `json:"state"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

// Reverse calls /v1/reverse and maps the payload to a GeoAddress. Unlike
// the storage layer this collaborator's failures are surfaced to callers.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*domain.GeoAddress, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/reverse?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build reverse request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverse lookup: unexpected status %d", resp.StatusCode)
	}

	var payload reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode reverse response: %w", err)
	}

	city := payload.Address.City
	if city == "" {
		city = payload.Address.Town
	}
	if city == "" {
		city = payload.Address.Village
	}

	return &domain.GeoAddress{
		FullAddress: payload.DisplayName,
		City:        city,
		State:       payload.Address.State,
		Pincode:     payload.Address.Postcode,
		Latitude:    lat,
		Longitude:   lon,
	}, nil
}
