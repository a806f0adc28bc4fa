// File: /utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderly-api/models"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

func SendSuccess(c *gin.Context, message string, data interface{}) {
	response := SuccessResponse{
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(http.StatusOK, response)
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Message: message,
		Data:    data,
	})
}

// SendServiceError maps the service error taxonomy onto HTTP statuses.
func SendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrTripNotFound):
		SendError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, models.ErrNotOwner):
		SendError(c, http.StatusForbidden, "Only the trip owner can do that")
	case errors.Is(err, models.ErrRemoteUnavailable):
		SendError(c, http.StatusServiceUnavailable, "Trip catalog is currently unavailable")
	case errors.Is(err, models.ErrRemoteWrite):
		SendError(c, http.StatusBadGateway, "Failed to write to the trip catalog")
	case errors.Is(err, models.ErrLocalStorage):
		SendError(c, http.StatusInternalServerError, "Saved trips storage failure")
	default:
		SendError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
