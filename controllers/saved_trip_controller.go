// File: /controllers/saved_trip_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderly-api/services"
	"wanderly-api/utils"
)

type SavedTripController struct {
	tripService *services.TripService
}

func NewSavedTripController(tripService *services.TripService) *SavedTripController {
	return &SavedTripController{tripService: tripService}
}

// GetSavedTrips lists the current user's save-set.
func (sc *SavedTripController) GetSavedTrips(c *gin.Context) {
	userID := c.GetString("user_id")

	records, err := sc.tripService.ListSavedTrips(userID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved_trips": records})
}

// SaveTrip copies a catalog trip into the current user's save-set. Saving
// again refreshes the snapshot without touching the started flag.
func (sc *SavedTripController) SaveTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	record, err := sc.tripService.SaveTrip(userID, tripID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Trip saved successfully", record)
}

// UnsaveTrip removes the save record; the catalog trip is untouched.
func (sc *SavedTripController) UnsaveTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	if err := sc.tripService.UnsaveTrip(userID, tripID); err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Trip removed from saved trips", nil)
}

// IsSaved reports whether the current user saved the trip.
func (sc *SavedTripController) IsSaved(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	saved, err := sc.tripService.IsSaved(userID, tripID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// ToggleStarted flips the in-progress flag on a saved trip.
func (sc *SavedTripController) ToggleStarted(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	started, err := sc.tripService.ToggleStarted(userID, tripID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"started": started})
}
