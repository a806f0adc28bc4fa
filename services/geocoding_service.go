// File: /services/geocoding_service.go
package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wanderly-api/models"
)

const mapboxBaseURL = "https://api.mapbox.com"

// GeocodingService resolves coordinates to addresses and routes between
// trip points through the Mapbox API. It is a read-only collaborator; trip
// data never flows back into it.
type GeocodingService struct {
	token   string
	baseURL string
	client  *http.Client
}

func NewGeocodingService(token string) *GeocodingService {
	return &GeocodingService{
		token:   token,
		baseURL: mapboxBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewGeocodingServiceWithBaseURL is used by tests to point the service at a
// local server.
func NewGeocodingServiceWithBaseURL(token, baseURL string) *GeocodingService {
	service := NewGeocodingService(token)
	service.baseURL = baseURL
	return service
}

// Place is one geocoding match.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RoutePlan is a resolved route over start, waypoints and end.
type RoutePlan struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Summary         string  `json:"summary"`
}

type geocodeResponse struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"` // [lng, lat]
	} `json:"features"`
}

type directionsResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Legs     []struct {
			Summary string `json:"summary"`
		} `json:"legs"`
	} `json:"routes"`
	Code string `json:"code"`
}

// Geocode resolves a free-text query to matching places.
func (s *GeocodingService) Geocode(query string) ([]Place, error) {
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?access_token=%s&limit=5",
		s.baseURL, url.PathEscape(query), url.QueryEscape(s.token))
	return s.fetchPlaces(endpoint)
}

// ReverseGeocode resolves a coordinate pair to a human-readable address.
func (s *GeocodingService) ReverseGeocode(point models.GeoPoint) ([]Place, error) {
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%f,%f.json?access_token=%s&limit=1",
		s.baseURL, point.Longitude, point.Latitude, url.QueryEscape(s.token))
	return s.fetchPlaces(endpoint)
}

func (s *GeocodingService) fetchPlaces(endpoint string) ([]Place, error) {
	resp, err := s.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	places := make([]Place, 0, len(payload.Features))
	for _, feature := range payload.Features {
		if len(feature.Center) < 2 {
			continue
		}
		places = append(places, Place{
			Name:      feature.PlaceName,
			Latitude:  feature.Center[1],
			Longitude: feature.Center[0],
		})
	}
	return places, nil
}

// Directions resolves a route through the given points in order. The
// profile names a Mapbox routing profile (walking, cycling, driving);
// anything else falls back to walking.
func (s *GeocodingService) Directions(profile string, points []models.GeoPoint) (*RoutePlan, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("directions require at least two points")
	}

	switch profile {
	case "walking", "cycling", "driving":
	default:
		profile = "walking"
	}

	coords := make([]string, len(points))
	for i, point := range points {
		coords[i] = fmt.Sprintf("%f,%f", point.Longitude, point.Latitude)
	}

	endpoint := fmt.Sprintf("%s/directions/v5/mapbox/%s/%s?access_token=%s&overview=false",
		s.baseURL, profile, strings.Join(coords, ";"), url.QueryEscape(s.token))

	resp, err := s.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directions request failed with status %d", resp.StatusCode)
	}

	var payload directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}

	if len(payload.Routes) == 0 {
		return nil, fmt.Errorf("no route found between the given points")
	}

	route := payload.Routes[0]
	plan := &RoutePlan{
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}
	if len(route.Legs) > 0 {
		plan.Summary = route.Legs[0].Summary
	}
	return plan, nil
}
