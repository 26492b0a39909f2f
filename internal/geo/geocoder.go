package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Location is a resolved coordinate plus a human-readable place label.
type Location struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
}

// ErrNotFound means the geocoder had no match for the query. It is a normal
// outcome, not a service failure.
var ErrNotFound = errors.New("no matching location")

// Geocoder resolves a query string to at most one location.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*Location, error)
}

// Client wraps the OpenRouteService geocoding API, scoped to one country and
// asking for a single match.
type Client struct {
	apiKey     string
	baseURL    string
	country    string
	httpClient *http.Client
}

// NewClient builds a client from GEOCODER_API_KEY. Returns nil if the key is
// unset so callers can degrade gracefully.
func NewClient() *Client {
	key := os.Getenv("GEOCODER_API_KEY")
	if key == "" {
		return nil
	}
	base := os.Getenv("GEOCODER_BASE_URL")
	if base == "" {
		base = "https://api.openrouteservice.org"
	}
	return &Client{
		apiKey:  key,
		baseURL: base,
		country: "US",
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lng, lat]
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode issues one lookup request. A non-success status or an empty result
// list both come back as ErrNotFound; only transport problems are hard errors.
func (c *Client) Geocode(ctx context.Context, query string) (*Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/geocode/search", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("text", query)
	q.Set("boundary.country", c.country)
	q.Set("size", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNotFound
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return nil, ErrNotFound
	}

	feat := decoded.Features[0]
	if len(feat.Geometry.Coordinates) != 2 {
		return nil, fmt.Errorf("invalid coordinate format in geocode response")
	}

	return &Location{
		Lat:   feat.Geometry.Coordinates[1],
		Lng:   feat.Geometry.Coordinates[0],
		Label: cleanLabel(feat.Properties.Label, query),
	}, nil
}

var titleCaser = cases.Title(language.AmericanEnglish)

// cleanLabel tidies the provider's place label. Some providers return
// all-caps labels; those get re-cased for display.
func cleanLabel(label, fallback string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return fallback
	}
	if label == strings.ToUpper(label) && label != strings.ToLower(label) {
		return titleCaser.String(strings.ToLower(label))
	}
	return label
}
