// File: /controllers/geocoding_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"wanderly-api/models"
	"wanderly-api/services"
	"wanderly-api/utils"
)

type GeocodingController struct {
	geocodingService *services.GeocodingService
}

func NewGeocodingController(geocodingService *services.GeocodingService) *GeocodingController {
	return &GeocodingController{geocodingService: geocodingService}
}

// Geocode resolves ?q= to matching places.
func (gc *GeocodingController) Geocode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	places, err := gc.geocodingService.Geocode(query)
	if err != nil {
		utils.SendError(c, http.StatusBadGateway, "Geocoding service unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": places})
}

// ReverseGeocode resolves ?lat=&lng= to an address.
func (gc *GeocodingController) ReverseGeocode(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil || !utils.IsValidLatitude(lat) || !utils.IsValidLongitude(lng) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid 'lat' and 'lng' parameters are required"})
		return
	}

	places, err := gc.geocodingService.ReverseGeocode(models.GeoPoint{Latitude: lat, Longitude: lng})
	if err != nil {
		utils.SendError(c, http.StatusBadGateway, "Geocoding service unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": places})
}

type DirectionsRequest struct {
	Profile   string            `json:"profile"`
	Start     models.GeoPoint   `json:"start" binding:"required"`
	End       models.GeoPoint   `json:"end" binding:"required"`
	Waypoints []models.GeoPoint `json:"waypoints"`
}

// Directions resolves a route over start, waypoints and end.
func (gc *GeocodingController) Directions(c *gin.Context) {
	var req DirectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points := make([]models.GeoPoint, 0, len(req.Waypoints)+2)
	points = append(points, req.Start)
	points = append(points, req.Waypoints...)
	points = append(points, req.End)

	for _, point := range points {
		if !utils.IsValidLatitude(point.Latitude) || !utils.IsValidLongitude(point.Longitude) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
			return
		}
	}

	plan, err := gc.geocodingService.Directions(req.Profile, points)
	if err != nil {
		utils.SendError(c, http.StatusBadGateway, "Directions service unavailable")
		return
	}

	c.JSON(http.StatusOK, plan)
}
