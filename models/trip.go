// File: /models/trip.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Trip is a catalog record describing a planned journey. The id is assigned
// client-side before the insert so a retried create hits the same document.
type Trip struct {
	ID                    string        `json:"id" gorm:"primaryKey;size:191"`
	OwnerID               string        `json:"owner_id" gorm:"index;size:191"` // empty for seeded catalog trips
	Name                  string        `json:"name" gorm:"not null;size:255"`
	Description           string        `json:"description"`
	TransportationMode    string        `json:"transportation_mode" gorm:"size:50"`
	StartPoint            GeoPoint      `json:"start_point" gorm:"type:json"`
	EndPoint              GeoPoint      `json:"end_point" gorm:"type:json"`
	Waypoints             GeoPointSlice `json:"waypoints" gorm:"type:json"`
	PackingList           StringSlice   `json:"packing_list" gorm:"type:json"`
	Images                StringSlice   `json:"images" gorm:"type:json"`
	LengthInKm            float64       `json:"length_in_km"`
	TripDurationInMinutes int           `json:"trip_duration_in_minutes"`
	ClickCounter          int           `json:"click_counter" gorm:"default:0"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

// GeoPoint is a latitude/longitude pair stored as a JSON column.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p GeoPoint) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *GeoPoint) Scan(value interface{}) error {
	if value == nil {
		*p = GeoPoint{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("type assertion to []byte failed")
	}
}

type GeoPointSlice []GeoPoint

func (s GeoPointSlice) Value() (driver.Value, error) {
	if s == nil {
		s = GeoPointSlice{}
	}
	return json.Marshal(s)
}

func (s *GeoPointSlice) Scan(value interface{}) error {
	if value == nil {
		*s = GeoPointSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("type assertion to []byte failed")
	}
}

// Custom type for JSON string arrays
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("type assertion to []byte failed")
	}
}
