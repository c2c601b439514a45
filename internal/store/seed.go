package store

import (
	"time"

	"sapar/internal/models"
)

// defaultData builds the seed collection set written on first load: one
// user and the destination catalog. Seed records keep small fixed ids so
// the session can address the default user directly.
func defaultData() *models.Database {
	return &models.Database{
		Users: []models.User{
			{
				ID:    "1",
				Name:  "John Doe",
				Email: "john@example.com",
				Preferences: models.UserPreferences{
					Budget:      "medium",
					TravelStyle: "adventure",
					Interests:   []string{"heritage", "culture", "food"},
				},
				CreatedAt: time.Now(),
			},
		},
		Destinations: []models.Destination{
			{
				ID:              "1",
				Name:            "Mumbai",
				Country:         "India",
				Description:     "The commercial capital of India with rich history and vibrant culture",
				AverageCost:     2000,
				BestTimeToVisit: []string{"October", "November", "December", "January", "February"},
				Activities:      []string{"heritage", "culture", "food", "nightlife"},
				Coordinates:     models.Coordinates{Lat: 19.0760, Lng: 72.8777},
			},
			{
				ID:              "2",
				Name:            "Goa",
				Country:         "India",
				Description:     "Beach paradise with Portuguese heritage and laid-back vibes",
				AverageCost:     3000,
				BestTimeToVisit: []string{"November", "December", "January", "February"},
				Activities:      []string{"beach", "adventure", "nightlife", "food"},
				Coordinates:     models.Coordinates{Lat: 15.2993, Lng: 74.1240},
			},
			{
				ID:              "3",
				Name:            "Rajasthan",
				Country:         "India",
				Description:     "Royal heritage with magnificent palaces and desert landscapes",
				AverageCost:     2500,
				BestTimeToVisit: []string{"October", "November", "December", "January", "February", "March"},
				Activities:      []string{"heritage", "culture", "adventure", "photography"},
				Coordinates:     models.Coordinates{Lat: 27.0238, Lng: 74.2179},
			},
		},
		TripPlans: []models.TripPlan{},
		Bookings:  []models.Booking{},
	}
}
