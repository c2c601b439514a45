package models

import (
	"time"
)

// User represents a traveler in the system
type User struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Preferences UserPreferences `json:"preferences"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// UserPreferences holds the travel profile of a user
type UserPreferences struct {
	Budget      string   `json:"budget"`
	TravelStyle string   `json:"travelStyle"`
	Interests   []string `json:"interests"`
}

// Destination represents a destination from the catalog
type Destination struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Country         string      `json:"country"`
	Description     string      `json:"description"`
	AverageCost     int         `json:"averageCost"`
	BestTimeToVisit []string    `json:"bestTimeToVisit"`
	Activities      []string    `json:"activities"`
	Coordinates     Coordinates `json:"coordinates"`
}

// Coordinates is a lat/lng pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TripPlan represents a planned trip with its generated itinerary
type TripPlan struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Travelers   int       `json:"travelers"`
	Budget      int       `json:"budget"`
	Mood        string    `json:"mood"`
	Itinerary   []DayPlan `json:"itinerary"`
	TotalCost   int       `json:"totalCost"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DayPlan is a single day of an itinerary, derived rather than persisted on its own
type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Location   string     `json:"location"`
	Activities []Activity `json:"activities"`
	TotalCost  int        `json:"totalCost"`
	Transport  string     `json:"transport"`
}

// Activity is a templated itinerary entry
type Activity struct {
	ID          string       `json:"id"`
	Time        string       `json:"time"`
	Title       string       `json:"title"`
	Type        string       `json:"type"`
	Duration    string       `json:"duration"`
	Cost        string       `json:"cost"`
	Rating      float64      `json:"rating"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Booking represents a completed booking of a trip
type Booking struct {
	TripID           string    `json:"tripId"`
	UserID           string    `json:"userId"`
	TotalAmount      int       `json:"totalAmount"`
	PaymentStatus    string    `json:"paymentStatus"`
	BookingReference string    `json:"bookingReference"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Database is the full collection set, persisted as a single JSON blob
type Database struct {
	Users        []User        `json:"users"`
	Destinations []Destination `json:"destinations"`
	TripPlans    []TripPlan    `json:"tripPlans"`
	Bookings     []Booking     `json:"bookings"`
}

// Trip plan statuses. Transitions are forward only. The confirmed status is
// part of the model but never produced by the current planning flow.
const (
	TripStatusDraft     = "draft"
	TripStatusConfirmed = "confirmed"
	TripStatusBooked    = "booked"
)

// Payment statuses
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)
