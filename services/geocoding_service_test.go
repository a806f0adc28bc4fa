// File: /services/geocoding_service_test.go
package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wanderly-api/models"
)

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/geocoding/v5/mapbox.places/")
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features":[{"place_name":"Bergen, Norway","center":[5.3259,60.3943]}]}`))
	}))
	defer server.Close()

	service := NewGeocodingServiceWithBaseURL("test-token", server.URL)

	places, err := service.Geocode("Bergen")
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Bergen, Norway", places[0].Name)
	assert.InDelta(t, 60.3943, places[0].Latitude, 1e-9)
	assert.InDelta(t, 5.3259, places[0].Longitude, 1e-9)
}

func TestReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features":[{"place_name":"Preikestolen, Norway","center":[6.1904,58.9868]}]}`))
	}))
	defer server.Close()

	service := NewGeocodingServiceWithBaseURL("test-token", server.URL)

	places, err := service.ReverseGeocode(models.GeoPoint{Latitude: 58.9868, Longitude: 6.1904})
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Preikestolen, Norway", places[0].Name)
}

func TestGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	service := NewGeocodingServiceWithBaseURL("bad-token", server.URL)

	_, err := service.Geocode("Bergen")
	assert.Error(t, err)
}

func TestDirections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/directions/v5/mapbox/walking/"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":8000,"duration":16200,"legs":[{"summary":"Preikestolvegen"}]}]}`))
	}))
	defer server.Close()

	service := NewGeocodingServiceWithBaseURL("test-token", server.URL)

	plan, err := service.Directions("walking", []models.GeoPoint{
		{Latitude: 58.9864, Longitude: 6.1521},
		{Latitude: 58.9868, Longitude: 6.1904},
	})
	require.NoError(t, err)
	assert.InDelta(t, 8000, plan.DistanceMeters, 1e-9)
	assert.InDelta(t, 16200, plan.DurationSeconds, 1e-9)
	assert.Equal(t, "Preikestolvegen", plan.Summary)
}

func TestDirectionsUnknownProfileFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/mapbox/walking/")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":100,"duration":60,"legs":[]}]}`))
	}))
	defer server.Close()

	service := NewGeocodingServiceWithBaseURL("test-token", server.URL)

	_, err := service.Directions("teleport", []models.GeoPoint{
		{Latitude: 60.39, Longitude: 5.32},
		{Latitude: 60.40, Longitude: 5.34},
	})
	require.NoError(t, err)
}

func TestDirectionsNeedsTwoPoints(t *testing.T) {
	service := NewGeocodingService("test-token")

	_, err := service.Directions("walking", []models.GeoPoint{{Latitude: 60.39, Longitude: 5.32}})
	assert.Error(t, err)
}
