// File: /repositories/trip_repository.go
package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wanderly-api/models"
)

// TripRepository is the catalog client. All reads surface
// models.ErrRemoteUnavailable, all writes models.ErrRemoteWrite, so callers
// never see driver errors directly.
type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

// FetchAll returns the entire catalog. An empty catalog is a valid result.
func (r *TripRepository) FetchAll() ([]models.Trip, error) {
	var trips []models.Trip
	if err := r.db.Find(&trips).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrRemoteUnavailable, err)
	}
	return trips, nil
}

// FetchByOwner returns the catalog trips created by the given user.
func (r *TripRepository) FetchByOwner(ownerID string) ([]models.Trip, error) {
	var trips []models.Trip
	if err := r.db.Where("owner_id = ?", ownerID).Find(&trips).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrRemoteUnavailable, err)
	}
	return trips, nil
}

// Search filters the catalog by a case-insensitive substring of name or
// description.
func (r *TripRepository) Search(query string) ([]models.Trip, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var trips []models.Trip
	if err := r.db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).Find(&trips).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrRemoteUnavailable, err)
	}
	return trips, nil
}

// FetchByID returns a single trip or models.ErrTripNotFound.
func (r *TripRepository) FetchByID(tripID string) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.First(&trip, "id = ?", tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTripNotFound
		}
		return nil, fmt.Errorf("%w: %v", models.ErrRemoteUnavailable, err)
	}
	return &trip, nil
}

// Create inserts a trip under its caller-assigned id. An insert that hits
// an existing id is a no-op, which makes a retried create safe.
func (r *TripRepository) Create(trip *models.Trip) error {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(trip)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", models.ErrRemoteWrite, result.Error)
	}
	return nil
}

// IncrementClickCounter bumps the view counter atomically in the store.
func (r *TripRepository) IncrementClickCounter(tripID string) error {
	result := r.db.Model(&models.Trip{}).Where("id = ?", tripID).
		UpdateColumn("click_counter", gorm.Expr("click_counter + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("%w: %v", models.ErrRemoteWrite, result.Error)
	}
	return nil
}

// Delete removes a trip from the catalog. Deleting an absent id is a no-op
// success; cascading the caller's save record is the service's job.
func (r *TripRepository) Delete(tripID string) error {
	if err := r.db.Delete(&models.Trip{}, "id = ?", tripID).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrRemoteWrite, err)
	}
	return nil
}
