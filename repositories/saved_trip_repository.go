// File: /repositories/saved_trip_repository.go
package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wanderly-api/models"
)

// lockingClause locks the row for the duration of a read-modify-write
// transaction.
func lockingClause() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// SavedTripRepository is the per-user save-set store. Records are keyed
// "{userId}_{tripId}" and hold a serialized snapshot of the trip. The store
// has no remote dependency; any failure here is surfaced as
// models.ErrLocalStorage.
type SavedTripRepository struct {
	db *gorm.DB
}

func NewSavedTripRepository(db *gorm.DB) *SavedTripRepository {
	return &SavedTripRepository{db: db}
}

// Save upserts the record for (userID, trip.ID). Saving an already-saved
// trip refreshes the snapshot but keeps the started flag, so a re-save
// never resets a trip that is in progress.
func (r *SavedTripRepository) Save(userID string, trip models.Trip) (*models.SavedTripRecord, error) {
	key := models.SavedTripKey(userID, trip.ID)
	record := models.NewSavedTripRecord(trip)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.SavedTrip
		err := tx.Clauses(lockingClause()).First(&existing, "`key` = ?", key).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err == nil {
			// Refresh the snapshot but carry the started flag over
			prior, decodeErr := models.DecodeSnapshot(existing.Snapshot, existing.SchemaVersion)
			if decodeErr != nil {
				return decodeErr
			}
			record.Started = prior.Started

			snapshot, encodeErr := models.EncodeSnapshot(record)
			if encodeErr != nil {
				return encodeErr
			}

			return tx.Model(&existing).Updates(map[string]interface{}{
				"schema_version": models.SavedTripSchemaVersion,
				"snapshot":       snapshot,
			}).Error
		}

		snapshot, encodeErr := models.EncodeSnapshot(record)
		if encodeErr != nil {
			return encodeErr
		}

		row := models.SavedTrip{
			Key:           key,
			UserID:        userID,
			TripID:        trip.ID,
			SchemaVersion: models.SavedTripSchemaVersion,
			Snapshot:      snapshot,
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrLocalStorage, err)
	}

	return &record, nil
}

// Delete removes the record for the pair. Deleting an absent record is a
// no-op success, so isSaved is false either way afterwards.
func (r *SavedTripRepository) Delete(userID, tripID string) error {
	key := models.SavedTripKey(userID, tripID)
	if err := r.db.Delete(&models.SavedTrip{}, "`key` = ?", key).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrLocalStorage, err)
	}
	return nil
}

// DeleteByTrip removes every user's record for a trip. Used to cascade a
// catalog delete.
func (r *SavedTripRepository) DeleteByTrip(tripID string) error {
	if err := r.db.Delete(&models.SavedTrip{}, "trip_id = ?", tripID).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrLocalStorage, err)
	}
	return nil
}

// IsSaved reports whether a record exists for the pair.
func (r *SavedTripRepository) IsSaved(userID, tripID string) (bool, error) {
	key := models.SavedTripKey(userID, tripID)

	var count int64
	if err := r.db.Model(&models.SavedTrip{}).Where("`key` = ?", key).Count(&count).Error; err != nil {
		return false, fmt.Errorf("%w: %v", models.ErrLocalStorage, err)
	}
	return count > 0, nil
}

// ListByUser returns all decoded records for a user. Order is not
// guaranteed. Legacy snapshots are migrated on the way out.
func (r *SavedTripRepository) ListByUser(userID string) ([]models.SavedTripRecord, error) {
	var rows []models.SavedTrip
	if err := r.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrLocalStorage, err)
	}

	records := make([]models.SavedTripRecord, 0, len(rows))
	for _, row := range rows {
		record, err := models.DecodeSnapshot(row.Snapshot, row.SchemaVersion)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrLocalStorage, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// ListTripIDs returns the distinct trip ids referenced by any save record.
func (r *SavedTripRepository) ListTripIDs() ([]string, error) {
	var tripIDs []string
	if err := r.db.Model(&models.SavedTrip{}).Distinct("trip_id").Pluck("trip_id", &tripIDs).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrLocalStorage, err)
	}
	return tripIDs, nil
}

// ToggleStarted flips the started flag against the currently persisted
// snapshot and returns the new value. The read-modify-write runs in a
// transaction with the row locked, so concurrent toggles from different
// screens cannot lose updates. Toggling an unsaved trip is an error.
func (r *SavedTripRepository) ToggleStarted(userID, tripID string) (bool, error) {
	key := models.SavedTripKey(userID, tripID)

	var started bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var row models.SavedTrip
		if err := tx.Clauses(lockingClause()).First(&row, "`key` = ?", key).Error; err != nil {
			return err
		}

		record, err := models.DecodeSnapshot(row.Snapshot, row.SchemaVersion)
		if err != nil {
			return err
		}

		record.Started = !record.Started
		started = record.Started

		snapshot, err := models.EncodeSnapshot(record)
		if err != nil {
			return err
		}

		return tx.Model(&row).Updates(map[string]interface{}{
			"schema_version": models.SavedTripSchemaVersion,
			"snapshot":       snapshot,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.ErrTripNotFound
		}
		return false, fmt.Errorf("%w: %v", models.ErrLocalStorage, err)
	}

	return started, nil
}
