// File: /services/trip_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wanderly-api/models"
)

// fakeCatalog is an in-memory TripCatalog with the same semantics as the
// gorm-backed repository: create is idempotent per id, delete of an absent
// id is a no-op, increments are monotonic.
type fakeCatalog struct {
	trips    []models.Trip
	fetchErr error
	writeErr error
}

func (f *fakeCatalog) FetchAll() ([]models.Trip, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]models.Trip, len(f.trips))
	copy(out, f.trips)
	return out, nil
}

func (f *fakeCatalog) FetchByOwner(ownerID string) ([]models.Trip, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var out []models.Trip
	for _, trip := range f.trips {
		if trip.OwnerID == ownerID {
			out = append(out, trip)
		}
	}
	return out, nil
}

func (f *fakeCatalog) Search(query string) ([]models.Trip, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	query = strings.ToLower(query)
	var out []models.Trip
	for _, trip := range f.trips {
		if strings.Contains(strings.ToLower(trip.Name), query) ||
			strings.Contains(strings.ToLower(trip.Description), query) {
			out = append(out, trip)
		}
	}
	return out, nil
}

func (f *fakeCatalog) FetchByID(tripID string) (*models.Trip, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	for i := range f.trips {
		if f.trips[i].ID == tripID {
			trip := f.trips[i]
			return &trip, nil
		}
	}
	return nil, models.ErrTripNotFound
}

func (f *fakeCatalog) Create(trip *models.Trip) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	for _, existing := range f.trips {
		if existing.ID == trip.ID {
			return nil // idempotent retry
		}
	}
	f.trips = append(f.trips, *trip)
	return nil
}

func (f *fakeCatalog) IncrementClickCounter(tripID string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	for i := range f.trips {
		if f.trips[i].ID == tripID {
			f.trips[i].ClickCounter++
		}
	}
	return nil
}

func (f *fakeCatalog) Delete(tripID string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	for i := range f.trips {
		if f.trips[i].ID == tripID {
			f.trips = append(f.trips[:i], f.trips[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeSaveSet mirrors the repository contract over a plain map.
type fakeSaveSet struct {
	records map[string]models.SavedTripRecord
}

func newFakeSaveSet() *fakeSaveSet {
	return &fakeSaveSet{records: make(map[string]models.SavedTripRecord)}
}

func (f *fakeSaveSet) Save(userID string, trip models.Trip) (*models.SavedTripRecord, error) {
	key := models.SavedTripKey(userID, trip.ID)
	record := models.NewSavedTripRecord(trip)
	if prior, ok := f.records[key]; ok {
		record.Started = prior.Started
	}
	f.records[key] = record
	return &record, nil
}

func (f *fakeSaveSet) Delete(userID, tripID string) error {
	delete(f.records, models.SavedTripKey(userID, tripID))
	return nil
}

func (f *fakeSaveSet) DeleteByTrip(tripID string) error {
	for key, record := range f.records {
		if record.ID == tripID {
			delete(f.records, key)
		}
	}
	return nil
}

func (f *fakeSaveSet) IsSaved(userID, tripID string) (bool, error) {
	_, ok := f.records[models.SavedTripKey(userID, tripID)]
	return ok, nil
}

func (f *fakeSaveSet) ListByUser(userID string) ([]models.SavedTripRecord, error) {
	var out []models.SavedTripRecord
	for key, record := range f.records {
		if strings.HasPrefix(key, userID+"_") {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeSaveSet) ListTripIDs() ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, record := range f.records {
		if _, ok := seen[record.ID]; ok {
			continue
		}
		seen[record.ID] = struct{}{}
		out = append(out, record.ID)
	}
	return out, nil
}

func (f *fakeSaveSet) ToggleStarted(userID, tripID string) (bool, error) {
	key := models.SavedTripKey(userID, tripID)
	record, ok := f.records[key]
	if !ok {
		return false, models.ErrTripNotFound
	}
	record.Started = !record.Started
	f.records[key] = record
	return record.Started, nil
}

func newTestService(trips ...models.Trip) (*TripService, *fakeCatalog, *fakeSaveSet) {
	catalog := &fakeCatalog{trips: trips}
	saveSet := newFakeSaveSet()
	return NewTripService(catalog, saveSet), catalog, saveSet
}

func testTrip(id, owner string) models.Trip {
	return models.Trip{
		ID:      id,
		OwnerID: owner,
		Name:    "Trip " + id,
		StartPoint: models.GeoPoint{
			Latitude:  58.9864,
			Longitude: 6.1521,
		},
		EndPoint: models.GeoPoint{
			Latitude:  58.9868,
			Longitude: 6.1904,
		},
		PackingList:           models.StringSlice{"Water bottle"},
		LengthInKm:            8,
		TripDurationInMinutes: 270,
	}
}

func TestSaveTrip(t *testing.T) {
	service, _, _ := newTestService(testTrip("t1", "owner"))

	saved, err := service.IsSaved("alice", "t1")
	require.NoError(t, err)
	assert.False(t, saved, "trip must not be saved before save is called")

	record, err := service.SaveTrip("alice", "t1")
	require.NoError(t, err)
	assert.True(t, record.SavedLocally)
	assert.False(t, record.Started)

	saved, err = service.IsSaved("alice", "t1")
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestSaveTripUnknownID(t *testing.T) {
	service, _, _ := newTestService(testTrip("t1", "owner"))

	_, err := service.SaveTrip("alice", "missing")
	assert.ErrorIs(t, err, models.ErrTripNotFound)
}

func TestSaveTripIdempotentKeepsStarted(t *testing.T) {
	service, _, _ := newTestService(testTrip("t1", "owner"))

	_, err := service.SaveTrip("alice", "t1")
	require.NoError(t, err)

	started, err := service.ToggleStarted("alice", "t1")
	require.NoError(t, err)
	assert.True(t, started)

	// Re-saving refreshes the snapshot but must not reset started
	record, err := service.SaveTrip("alice", "t1")
	require.NoError(t, err)
	assert.True(t, record.Started)

	records, err := service.ListSavedTrips("alice")
	require.NoError(t, err)
	require.Len(t, records, 1, "double save must not duplicate the record")
}

func TestUnsaveTrip(t *testing.T) {
	service, catalog, _ := newTestService(testTrip("t1", "owner"))

	_, err := service.SaveTrip("alice", "t1")
	require.NoError(t, err)

	require.NoError(t, service.UnsaveTrip("alice", "t1"))

	saved, err := service.IsSaved("alice", "t1")
	require.NoError(t, err)
	assert.False(t, saved)

	// Unsaving is local only; the catalog still has the trip
	trips, err := catalog.FetchAll()
	require.NoError(t, err)
	assert.Len(t, trips, 1)

	// Unsaving again is a no-op
	require.NoError(t, service.UnsaveTrip("alice", "t1"))
}

func TestToggleStartedTwiceRestores(t *testing.T) {
	service, _, _ := newTestService(testTrip("t1", "owner"))

	_, err := service.SaveTrip("alice", "t1")
	require.NoError(t, err)

	started, err := service.ToggleStarted("alice", "t1")
	require.NoError(t, err)
	assert.True(t, started)

	started, err = service.ToggleStarted("alice", "t1")
	require.NoError(t, err)
	assert.False(t, started)
}

func TestToggleStartedUnsavedTrip(t *testing.T) {
	service, _, _ := newTestService(testTrip("t1", "owner"))

	_, err := service.ToggleStarted("alice", "t1")
	assert.ErrorIs(t, err, models.ErrTripNotFound)
}

func TestCreateTripGeneratesID(t *testing.T) {
	service, catalog, _ := newTestService()

	trip := testTrip("", "")
	require.NoError(t, service.CreateTrip("alice", &trip))

	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, "alice", trip.OwnerID)

	trips, err := catalog.FetchAll()
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

func TestCreateTripIdempotentRetry(t *testing.T) {
	service, catalog, _ := newTestService()

	first := testTrip("abc123", "")
	require.NoError(t, service.CreateTrip("alice", &first))

	retry := testTrip("abc123", "")
	require.NoError(t, service.CreateTrip("alice", &retry))

	trips, err := catalog.FetchAll()
	require.NoError(t, err)
	assert.Len(t, trips, 1, "retry with the same id must not duplicate the trip")
}

func TestDeleteTripOwnerCascades(t *testing.T) {
	service, catalog, saveSet := newTestService(testTrip("t1", "alice"), testTrip("t2", "bob"))

	_, err := service.SaveTrip("alice", "t1")
	require.NoError(t, err)
	_, err = service.SaveTrip("bob", "t1")
	require.NoError(t, err)

	require.NoError(t, service.DeleteTrip("alice", "t1"))

	trips, err := catalog.FetchAll()
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "t2", trips[0].ID)

	saved, err := saveSet.IsSaved("alice", "t1")
	require.NoError(t, err)
	assert.False(t, saved, "owner's save record must be cascaded")

	saved, err = saveSet.IsSaved("bob", "t1")
	require.NoError(t, err)
	assert.False(t, saved, "other users' save records must be cascaded")
}

func TestDeleteTripNotOwner(t *testing.T) {
	service, catalog, _ := newTestService(testTrip("t1", "alice"))

	err := service.DeleteTrip("bob", "t1")
	assert.ErrorIs(t, err, models.ErrNotOwner)

	trips, err := catalog.FetchAll()
	require.NoError(t, err)
	assert.Len(t, trips, 1, "failed delete must not remove the trip")
}

func TestDeleteTripAlreadyGone(t *testing.T) {
	service, catalog, saveSet := newTestService(testTrip("t1", "alice"))

	_, err := service.SaveTrip("bob", "t1")
	require.NoError(t, err)

	// The trip vanishes remotely before the owner's delete lands
	require.NoError(t, catalog.Delete("t1"))

	require.NoError(t, service.DeleteTrip("alice", "t1"), "deleting an absent trip is a no-op")

	saved, err := saveSet.IsSaved("bob", "t1")
	require.NoError(t, err)
	assert.False(t, saved, "stale save records are swept even when the trip is already gone")
}

func TestListTripsSearch(t *testing.T) {
	hike := testTrip("t1", "")
	hike.Name = "Preikestolen hike"
	cycle := testTrip("t2", "")
	cycle.Name = "Rallarvegen cycle route"

	service, _, _ := newTestService(hike, cycle)

	trips, err := service.ListTrips("")
	require.NoError(t, err)
	assert.Len(t, trips, 2)

	trips, err = service.ListTrips("rallarvegen")
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "t2", trips[0].ID)
}

func TestRemoveOrphanedSaves(t *testing.T) {
	service, catalog, saveSet := newTestService(testTrip("t1", "alice"), testTrip("t2", "alice"))

	_, err := service.SaveTrip("bob", "t1")
	require.NoError(t, err)
	_, err = service.SaveTrip("bob", "t2")
	require.NoError(t, err)

	// t2 disappears from the catalog without a cascade
	require.NoError(t, catalog.Delete("t2"))

	removed, err := service.RemoveOrphanedSaves()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	saved, err := saveSet.IsSaved("bob", "t1")
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = saveSet.IsSaved("bob", "t2")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestSaveDeleteLifecycleScenario(t *testing.T) {
	service, catalog, _ := newTestService(testTrip("T1", "owner"))

	_, err := service.SaveTrip("A", "T1")
	require.NoError(t, err)

	saved, err := service.IsSaved("A", "T1")
	require.NoError(t, err)
	require.True(t, saved)

	started, err := service.ToggleStarted("A", "T1")
	require.NoError(t, err)
	require.True(t, started)

	started, err = service.ToggleStarted("A", "T1")
	require.NoError(t, err)
	require.False(t, started)

	require.NoError(t, service.UnsaveTrip("A", "T1"))

	saved, err = service.IsSaved("A", "T1")
	require.NoError(t, err)
	assert.False(t, saved)

	trips, err := catalog.FetchAll()
	require.NoError(t, err)
	assert.Len(t, trips, 1, "local unsave must leave the catalog untouched")
}
