// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"wanderly-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Trip{},
		&models.SavedTrip{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Popular-trips listing sorts on the counter
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trips_click_counter ON trips(click_counter DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for trips click_counter: %v\n", err)
	}

	// Save-set lookups by user and cascade deletes by trip
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_saved_trips_user_trip ON saved_trips(user_id, trip_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for saved_trips: %v\n", err)
	}

	return nil
}

// SeedData populates the catalog with starter trips for development.
func SeedData(db *gorm.DB) error {
	var tripCount int64
	db.Model(&models.Trip{}).Count(&tripCount)

	if tripCount > 0 {
		fmt.Println("Database already has trips, skipping seed")
		return nil
	}

	// OwnerID left empty: seeded catalog trips have no owning user.
	seedTrips := []models.Trip{
		{
			ID:                 "seed-preikestolen",
			Name:               "Preikestolen hike",
			Description:        "Classic hike to the Pulpit Rock plateau over the Lysefjord.",
			TransportationMode: "walking",
			StartPoint:         models.GeoPoint{Latitude: 58.9864, Longitude: 6.1521},
			EndPoint:           models.GeoPoint{Latitude: 58.9868, Longitude: 6.1904},
			Waypoints: models.GeoPointSlice{
				{Latitude: 58.9881, Longitude: 6.1702},
			},
			PackingList:           models.StringSlice{"Water bottle", "Hiking boots", "Rain jacket"},
			Images:                models.StringSlice{"https://picsum.photos/300/200?random=11"},
			LengthInKm:            8.0,
			TripDurationInMinutes: 270,
			ClickCounter:          12,
		},
		{
			ID:                    "seed-bergen-bryggen",
			Name:                  "Bergen city walk",
			Description:           "Stroll from the fish market through Bryggen and up Fløyen.",
			TransportationMode:    "walking",
			StartPoint:            models.GeoPoint{Latitude: 60.3943, Longitude: 5.3259},
			EndPoint:              models.GeoPoint{Latitude: 60.3966, Longitude: 5.3455},
			PackingList:           models.StringSlice{"Camera", "Umbrella"},
			Images:                models.StringSlice{"https://picsum.photos/300/200?random=12"},
			LengthInKm:            3.5,
			TripDurationInMinutes: 90,
			ClickCounter:          27,
		},
		{
			ID:                 "seed-rallarvegen",
			Name:               "Rallarvegen cycle route",
			Description:        "Downhill cycle route from Finse to Flåm along the old railway construction road.",
			TransportationMode: "cycling",
			StartPoint:         models.GeoPoint{Latitude: 60.6028, Longitude: 7.5038},
			EndPoint:           models.GeoPoint{Latitude: 60.8631, Longitude: 7.1135},
			Waypoints: models.GeoPointSlice{
				{Latitude: 60.6868, Longitude: 7.2748},
				{Latitude: 60.7774, Longitude: 7.1917},
			},
			PackingList:           models.StringSlice{"Helmet", "Gloves", "Packed lunch"},
			Images:                models.StringSlice{"https://picsum.photos/300/200?random=13"},
			LengthInKm:            53.0,
			TripDurationInMinutes: 420,
			ClickCounter:          8,
		},
	}

	for _, trip := range seedTrips {
		if err := db.Create(&trip).Error; err != nil {
			fmt.Printf("Warning: Could not create seed trip %s: %v\n", trip.Name, err)
		}
	}

	fmt.Println("Database seeded with starter trips")
	return nil
}
