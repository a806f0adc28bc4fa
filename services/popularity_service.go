// File: /services/popularity_service.go
package services

import (
	"log"
	"sort"

	"wanderly-api/models"
)

// PopularityService ranks catalog trips by view count and applies the single
// view-count rule: a view increments the counter only when the viewer is not
// the owner and has not already saved the trip. Opening a trip from the
// saved list therefore never counts.
type PopularityService struct {
	catalog TripCatalog
	saveSet SaveSet
}

func NewPopularityService(catalog TripCatalog, saveSet SaveSet) *PopularityService {
	return &PopularityService{catalog: catalog, saveSet: saveSet}
}

// Rank sorts trips descending by click counter. The sort is stable, so ties
// keep their catalog order and ranking an already-ranked list returns it
// unchanged. The input slice is not modified.
func (s *PopularityService) Rank(trips []models.Trip) []models.Trip {
	ranked := make([]models.Trip, len(trips))
	copy(ranked, trips)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ClickCounter > ranked[j].ClickCounter
	})
	return ranked
}

// PopularTrips returns the full catalog in ranked order.
func (s *PopularityService) PopularTrips() ([]models.Trip, error) {
	trips, err := s.catalog.FetchAll()
	if err != nil {
		return nil, err
	}
	return s.Rank(trips), nil
}

// RecordView applies the view-count rule for a trip opened by userID. The
// increment is best-effort: a failed write is logged and dropped, never
// retried and never surfaced to the viewer.
func (s *PopularityService) RecordView(userID, tripID string) {
	trip, err := s.catalog.FetchByID(tripID)
	if err != nil {
		log.Printf("Skipping view count for trip %s: %v", tripID, err)
		return
	}

	if trip.OwnerID == userID {
		return
	}

	saved, err := s.saveSet.IsSaved(userID, tripID)
	if err != nil {
		log.Printf("Skipping view count for trip %s: %v", tripID, err)
		return
	}
	if saved {
		return
	}

	if err := s.catalog.IncrementClickCounter(tripID); err != nil {
		log.Printf("Failed to count view for trip %s: %v", tripID, err)
	}
}
