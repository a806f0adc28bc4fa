// File: /services/trip_service.go
package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"wanderly-api/models"
)

// TripCatalog is the remote catalog client. The concrete implementation is
// repositories.TripRepository; the interface exists so the service can be
// exercised against fakes.
type TripCatalog interface {
	FetchAll() ([]models.Trip, error)
	FetchByOwner(ownerID string) ([]models.Trip, error)
	Search(query string) ([]models.Trip, error)
	FetchByID(tripID string) (*models.Trip, error)
	Create(trip *models.Trip) error
	IncrementClickCounter(tripID string) error
	Delete(tripID string) error
}

// SaveSet is the per-user local save-set store, implemented by
// repositories.SavedTripRepository.
type SaveSet interface {
	Save(userID string, trip models.Trip) (*models.SavedTripRecord, error)
	Delete(userID, tripID string) error
	DeleteByTrip(tripID string) error
	IsSaved(userID, tripID string) (bool, error)
	ListByUser(userID string) ([]models.SavedTripRecord, error)
	ListTripIDs() ([]string, error)
	ToggleStarted(userID, tripID string) (bool, error)
}

// TripService coordinates the catalog and the save-set so that save,
// unsave, start/stop and delete stay consistent for every (user, trip)
// pair.
type TripService struct {
	catalog TripCatalog
	saveSet SaveSet
}

func NewTripService(catalog TripCatalog, saveSet SaveSet) *TripService {
	return &TripService{catalog: catalog, saveSet: saveSet}
}

// ListTrips returns the catalog, optionally filtered by a search query.
func (s *TripService) ListTrips(query string) ([]models.Trip, error) {
	if strings.TrimSpace(query) == "" {
		return s.catalog.FetchAll()
	}
	return s.catalog.Search(strings.TrimSpace(query))
}

// ListOwnedTrips returns the trips created by the given user.
func (s *TripService) ListOwnedTrips(ownerID string) ([]models.Trip, error) {
	return s.catalog.FetchByOwner(ownerID)
}

// GetTrip returns a single catalog trip.
func (s *TripService) GetTrip(tripID string) (*models.Trip, error) {
	return s.catalog.FetchByID(tripID)
}

// CreateTrip inserts a new trip owned by userID. The id is generated here,
// before the remote call, so a retry of the same draft cannot create a
// second catalog entry.
func (s *TripService) CreateTrip(userID string, trip *models.Trip) error {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	trip.OwnerID = userID
	trip.ClickCounter = 0

	return s.catalog.Create(trip)
}

// SaveTrip copies a catalog trip into the caller's save-set. Saving a trip
// that is already saved refreshes the stored snapshot without resetting the
// started flag. Saving an id absent from the catalog is an error.
func (s *TripService) SaveTrip(userID, tripID string) (*models.SavedTripRecord, error) {
	trip, err := s.catalog.FetchByID(tripID)
	if err != nil {
		return nil, err
	}
	return s.saveSet.Save(userID, *trip)
}

// UnsaveTrip removes the caller's save record. The trip itself stays in the
// catalog; removing a record that does not exist is a no-op.
func (s *TripService) UnsaveTrip(userID, tripID string) error {
	return s.saveSet.Delete(userID, tripID)
}

// IsSaved reports whether the caller has the trip in their save-set.
func (s *TripService) IsSaved(userID, tripID string) (bool, error) {
	return s.saveSet.IsSaved(userID, tripID)
}

// ListSavedTrips returns the caller's save-set.
func (s *TripService) ListSavedTrips(userID string) ([]models.SavedTripRecord, error) {
	return s.saveSet.ListByUser(userID)
}

// ToggleStarted flips the in-progress flag on a saved trip and returns the
// new value. Only saved trips can be started or stopped.
func (s *TripService) ToggleStarted(userID, tripID string) (bool, error) {
	return s.saveSet.ToggleStarted(userID, tripID)
}

// DeleteTrip removes a trip from the catalog. Only the owner may do this;
// a non-owner gets models.ErrNotOwner and nothing changes. The save records
// referencing the trip are cascaded first, matching the local-then-remote
// order of the mobile client, so a remote failure never leaves a dangling
// local record for a trip the owner meant to remove.
func (s *TripService) DeleteTrip(userID, tripID string) error {
	trip, err := s.catalog.FetchByID(tripID)
	if err != nil {
		if errors.Is(err, models.ErrTripNotFound) {
			// Already gone remotely; still sweep any stale save records.
			return s.saveSet.DeleteByTrip(tripID)
		}
		return err
	}

	if trip.OwnerID != userID {
		return models.ErrNotOwner
	}

	if err := s.saveSet.DeleteByTrip(tripID); err != nil {
		return err
	}
	return s.catalog.Delete(tripID)
}

// RemoveOrphanedSaves deletes save records whose catalog trip no longer
// exists and reports how many trips were swept. This backstops the cascade
// for deletes that happened while a record holder was offline.
func (s *TripService) RemoveOrphanedSaves() (int, error) {
	trips, err := s.catalog.FetchAll()
	if err != nil {
		return 0, err
	}

	known := make(map[string]struct{}, len(trips))
	for _, trip := range trips {
		known[trip.ID] = struct{}{}
	}

	tripIDs, err := s.saveSet.ListTripIDs()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, tripID := range tripIDs {
		if _, ok := known[tripID]; ok {
			continue
		}
		if err := s.saveSet.DeleteByTrip(tripID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
