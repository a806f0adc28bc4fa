// File: /models/saved_trip.go
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// SavedTripSchemaVersion is the snapshot format written by this build.
// Version 0 snapshots predate the field renames and are migrated on read.
const SavedTripSchemaVersion = 1

// SavedTrip is one row of the per-user save-set. The composite key is
// "{userId}_{tripId}" and Snapshot holds the serialized trip copy taken at
// save time, including the started flag.
type SavedTrip struct {
	Key           string    `json:"key" gorm:"primaryKey;size:383"`
	UserID        string    `json:"user_id" gorm:"index;not null;size:191"`
	TripID        string    `json:"trip_id" gorm:"index;not null;size:191"`
	SchemaVersion int       `json:"schema_version" gorm:"default:0"`
	Snapshot      string    `json:"snapshot" gorm:"type:json;not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SavedTripKey builds the composite storage key for a (user, trip) pair.
func SavedTripKey(userID, tripID string) string {
	return fmt.Sprintf("%s_%s", userID, tripID)
}

// SavedTripRecord is the decoded snapshot. Field names follow the stored
// wire format, which is kept stable across schema versions by migration.
type SavedTripRecord struct {
	ID                    string        `json:"id"`
	OwnerID               string        `json:"ownerID"`
	Name                  string        `json:"name"`
	Description           string        `json:"description"`
	TransportationMode    string        `json:"transportationMode"`
	StartPoint            GeoPoint      `json:"startPoint"`
	EndPoint              GeoPoint      `json:"endPoint"`
	Waypoints             GeoPointSlice `json:"waypoints"`
	PackingList           StringSlice   `json:"packingList"`
	Images                StringSlice   `json:"images"`
	LengthInKm            float64       `json:"lengthInKm"`
	TripDurationInMinutes int           `json:"tripDurationInMinutes"`
	ClickCounter          int           `json:"clickCounter"`
	SavedLocally          bool          `json:"savedLocally"`
	Started               bool          `json:"started"`
}

// legacySavedTripRecord carries the version 0 field names so old snapshots
// can still be read.
type legacySavedTripRecord struct {
	SavedTripRecord
	LegacyID       string      `json:"UUID"`
	MinutesToWalk  int         `json:"minutesToWalkByFoot"`
	WhatToBring    StringSlice `json:"whatToBring"`
	LegacyDuration int         `json:"durationInMinutes"`
}

// NewSavedTripRecord copies a catalog trip into a snapshot record.
func NewSavedTripRecord(trip Trip) SavedTripRecord {
	return SavedTripRecord{
		ID:                    trip.ID,
		OwnerID:               trip.OwnerID,
		Name:                  trip.Name,
		Description:           trip.Description,
		TransportationMode:    trip.TransportationMode,
		StartPoint:            trip.StartPoint,
		EndPoint:              trip.EndPoint,
		Waypoints:             trip.Waypoints,
		PackingList:           trip.PackingList,
		Images:                trip.Images,
		LengthInKm:            trip.LengthInKm,
		TripDurationInMinutes: trip.TripDurationInMinutes,
		ClickCounter:          trip.ClickCounter,
		SavedLocally:          true,
	}
}

// EncodeSnapshot serializes a record at the current schema version.
func EncodeSnapshot(record SavedTripRecord) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode saved trip snapshot: %w", err)
	}
	return string(data), nil
}

// DecodeSnapshot parses a stored snapshot, migrating older schema versions
// to the current field set.
func DecodeSnapshot(snapshot string, schemaVersion int) (SavedTripRecord, error) {
	if schemaVersion >= SavedTripSchemaVersion {
		var record SavedTripRecord
		if err := json.Unmarshal([]byte(snapshot), &record); err != nil {
			return SavedTripRecord{}, fmt.Errorf("failed to decode saved trip snapshot: %w", err)
		}
		return record, nil
	}

	var legacy legacySavedTripRecord
	if err := json.Unmarshal([]byte(snapshot), &legacy); err != nil {
		return SavedTripRecord{}, fmt.Errorf("failed to decode legacy saved trip snapshot: %w", err)
	}

	record := legacy.SavedTripRecord
	if record.ID == "" {
		record.ID = legacy.LegacyID
	}
	if record.TripDurationInMinutes == 0 {
		if legacy.LegacyDuration != 0 {
			record.TripDurationInMinutes = legacy.LegacyDuration
		} else {
			record.TripDurationInMinutes = legacy.MinutesToWalk
		}
	}
	if len(record.PackingList) == 0 {
		record.PackingList = legacy.WhatToBring
	}
	record.SavedLocally = true

	return record, nil
}
