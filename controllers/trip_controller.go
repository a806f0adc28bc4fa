// File: /controllers/trip_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderly-api/models"
	"wanderly-api/services"
	"wanderly-api/utils"
)

type TripController struct {
	tripService       *services.TripService
	popularityService *services.PopularityService
}

func NewTripController(tripService *services.TripService, popularityService *services.PopularityService) *TripController {
	return &TripController{
		tripService:       tripService,
		popularityService: popularityService,
	}
}

type CreateTripRequest struct {
	ID                 string            `json:"id"` // optional; generated when empty
	Name               string            `json:"name" binding:"required"`
	Description        string            `json:"description"`
	TransportationMode string            `json:"transportation_mode"`
	StartPoint         models.GeoPoint   `json:"start_point" binding:"required"`
	EndPoint           models.GeoPoint   `json:"end_point" binding:"required"`
	Waypoints          []models.GeoPoint `json:"waypoints"`
	PackingList        []string          `json:"packing_list"`
	Images             []string          `json:"images"`
	LengthInKm         float64           `json:"length_in_km"`
	DurationInMinutes  int               `json:"trip_duration_in_minutes"`
}

// GetTrips lists the catalog, optionally filtered with ?search=.
func (tc *TripController) GetTrips(c *gin.Context) {
	trips, err := tc.tripService.ListTrips(c.Query("search"))
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GetPopularTrips lists the catalog ranked by click counter.
func (tc *TripController) GetPopularTrips(c *gin.Context) {
	trips, err := tc.popularityService.PopularTrips()
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GetMyTrips lists the trips the current user created.
func (tc *TripController) GetMyTrips(c *gin.Context) {
	userID := c.GetString("user_id")

	trips, err := tc.tripService.ListOwnedTrips(userID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GetTrip returns trip details and records the view. The view count only
// moves for viewers who neither own nor have saved the trip.
func (tc *TripController) GetTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	trip, err := tc.tripService.GetTrip(tripID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	tc.popularityService.RecordView(userID, tripID)

	c.JSON(http.StatusOK, trip)
}

// CreateTrip adds a trip to the catalog owned by the current user.
func (tc *TripController) CreateTrip(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidLatitude(req.StartPoint.Latitude) || !utils.IsValidLongitude(req.StartPoint.Longitude) ||
		!utils.IsValidLatitude(req.EndPoint.Latitude) || !utils.IsValidLongitude(req.EndPoint.Longitude) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start or end coordinates"})
		return
	}
	for _, wp := range req.Waypoints {
		if !utils.IsValidLatitude(wp.Latitude) || !utils.IsValidLongitude(wp.Longitude) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid waypoint coordinates"})
			return
		}
	}
	if !utils.IsValidTransportationMode(req.TransportationMode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown transportation mode"})
		return
	}
	if req.LengthInKm < 0 || req.DurationInMinutes < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Length and duration must be non-negative"})
		return
	}

	trip := models.Trip{
		ID:                    req.ID,
		Name:                  req.Name,
		Description:           req.Description,
		TransportationMode:    req.TransportationMode,
		StartPoint:            req.StartPoint,
		EndPoint:              req.EndPoint,
		Waypoints:             models.GeoPointSlice(req.Waypoints),
		PackingList:           models.StringSlice(req.PackingList),
		Images:                models.StringSlice(req.Images),
		LengthInKm:            req.LengthInKm,
		TripDurationInMinutes: req.DurationInMinutes,
	}

	if err := tc.tripService.CreateTrip(userID, &trip); err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendCreated(c, "Trip created successfully", trip)
}

// DeleteTrip removes a trip from the catalog. Owner only; save records for
// the trip are cascaded.
func (tc *TripController) DeleteTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	if err := tc.tripService.DeleteTrip(userID, tripID); err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Trip deleted successfully", nil)
}
