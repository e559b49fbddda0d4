package main

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ============================================================================
// GEOCODING CLIENT (Mapbox forward geocoding)
// ============================================================================

// GeocodeResult is the resolved location for a street address.
type GeocodeResult struct {
	Latitude  float64
	Longitude float64
	City      string
	PlaceName string
}

// Geocoder resolves a free-text address. The plan pipeline owns only this
// interface; the Mapbox client below is injected at startup.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
}

type mapboxFeature struct {
	Center    []float64 `json:"center"`
	PlaceName string    `json:"place_name"`
	Text      string    `json:"text"`
	PlaceType []string  `json:"place_type"`
	Context   []struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"context"`
}

type mapboxResponse struct {
	Features []mapboxFeature `json:"features"`
}

// MapboxClient geocodes against the Mapbox places API.
type MapboxClient struct {
	http   *resty.Client
	token  string
	logger *zap.Logger
}

func NewMapboxClient(baseURL, token string, logger *zap.Logger) *MapboxClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")

	return &MapboxClient{http: client, token: token, logger: logger}
}

func (c *MapboxClient) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	var result mapboxResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_token": c.token,
			"limit":        "1",
			"country":      "US",
		}).
		SetResult(&result).
		Get("/geocoding/v5/mapbox.places/" + url.PathEscape(address) + ".json")
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("geocode request: status %d", resp.StatusCode())
	}
	if len(result.Features) == 0 {
		return nil, fmt.Errorf("no geocoding match for %q", address)
	}

	feature := result.Features[0]
	if len(feature.Center) < 2 {
		return nil, fmt.Errorf("geocoding match for %q has no coordinates", address)
	}

	city := cityFromFeature(feature)
	c.logger.Debug("geocoded address",
		zap.String("address", address),
		zap.String("city", city),
		zap.Float64("lat", feature.Center[1]),
		zap.Float64("lon", feature.Center[0]),
	)

	return &GeocodeResult{
		Longitude: feature.Center[0],
		Latitude:  feature.Center[1],
		City:      city,
		PlaceName: feature.PlaceName,
	}, nil
}

// cityFromFeature pulls the place-level context entry; a feature that is
// itself a place uses its own text.
func cityFromFeature(f mapboxFeature) string {
	for _, ctx := range f.Context {
		if len(ctx.ID) >= 6 && ctx.ID[:6] == "place." {
			return ctx.Text
		}
	}
	for _, t := range f.PlaceType {
		if t == "place" {
			return f.Text
		}
	}
	return f.Text
}
