package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGeocodeResolvesCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "US", r.URL.Query().Get("country"))
		fmt.Fprint(w, `{
			"features": [{
				"center": [-122.545, 37.906],
				"place_name": "100 Throckmorton Ave, Mill Valley, California 94941, United States",
				"text": "Throckmorton Ave",
				"place_type": ["address"],
				"context": [
					{"id": "postcode.123", "text": "94941"},
					{"id": "place.456", "text": "Mill Valley"},
					{"id": "region.789", "text": "California"}
				]
			}]
		}`)
	}))
	defer srv.Close()

	client := NewMapboxClient(srv.URL, "test-token", zap.NewNop())
	got, err := client.Geocode(context.Background(), "100 Throckmorton Ave, Mill Valley")
	require.NoError(t, err)
	assert.Equal(t, "Mill Valley", got.City)
	assert.InDelta(t, 37.906, got.Latitude, 0.001)
	assert.InDelta(t, -122.545, got.Longitude, 0.001)
}

func TestGeocodePlaceFeatureUsesOwnText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"features": [{
				"center": [-122.5, 38.1],
				"place_name": "Novato, California, United States",
				"text": "Novato",
				"place_type": ["place"],
				"context": [{"id": "region.789", "text": "California"}]
			}]
		}`)
	}))
	defer srv.Close()

	client := NewMapboxClient(srv.URL, "t", zap.NewNop())
	got, err := client.Geocode(context.Background(), "Novato")
	require.NoError(t, err)
	assert.Equal(t, "Novato", got.City)
}

func TestGeocodeNoFeatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"features": []}`)
	}))
	defer srv.Close()

	client := NewMapboxClient(srv.URL, "t", zap.NewNop())
	_, err := client.Geocode(context.Background(), "asdfghjkl")
	assert.Error(t, err)
}

func TestGeocodeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewMapboxClient(srv.URL, "bad", zap.NewNop())
	_, err := client.Geocode(context.Background(), "100 Main St")
	assert.Error(t, err)
}

func TestGeocodeMissingCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"features": [{"center": [], "text": "nowhere"}]}`)
	}))
	defer srv.Close()

	client := NewMapboxClient(srv.URL, "t", zap.NewNop())
	_, err := client.Geocode(context.Background(), "nowhere")
	assert.Error(t, err)
}
