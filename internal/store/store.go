package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"sapar/internal/models"
	"sapar/internal/storage"
	"sapar/internal/suggest"

	"github.com/google/uuid"
)

// Store is the persistence facade over the planner database blob. Every
// operation reads the full collection set from the backend, applies its
// change and writes the blob back, so records handed out are always
// detached copies.
type Store struct {
	backend   storage.Backend
	advisor   suggest.Advisor
	generator suggest.Generator
	mu        sync.Mutex
}

func New(backend storage.Backend, advisor suggest.Advisor, generator suggest.Generator) *Store {
	return &Store{
		backend:   backend,
		advisor:   advisor,
		generator: generator,
	}
}

// load reads the blob, seeding and persisting the default data on first
// use. It never returns partially initialized state: the seed is written
// before the first read returns.
func (s *Store) load(ctx context.Context) (*models.Database, error) {
	raw, err := s.backend.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		db := defaultData()
		if err := s.save(ctx, db); err != nil {
			return nil, err
		}
		return db, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load planner data: %w", err)
	}

	var db models.Database
	if err := json.Unmarshal(raw, &db); err != nil {
		// Corrupt blob propagates, no automatic repair
		return nil, fmt.Errorf("failed to decode planner data: %w", err)
	}
	return &db, nil
}

func (s *Store) save(ctx context.Context, db *models.Database) error {
	raw, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("failed to encode planner data: %w", err)
	}
	if err := s.backend.Save(ctx, raw); err != nil {
		return fmt.Errorf("failed to save planner data: %w", err)
	}
	return nil
}

// Load returns the full collection set
func (s *Store) Load(ctx context.Context) (*models.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// GetUser returns the user with the given id, or nil when absent
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range db.Users {
		if db.Users[i].ID == id {
			return &db.Users[i], nil
		}
	}
	return nil, nil
}

// CreateUser appends a new user with a fresh id and creation timestamp
func (s *Store) CreateUser(ctx context.Context, data models.NewUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:          newID(),
		Name:        data.Name,
		Email:       data.Email,
		Preferences: data.Preferences,
		CreatedAt:   time.Now(),
	}
	db.Users = append(db.Users, user)

	if err := s.save(ctx, db); err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchDestinations filters the catalog by a case-insensitive substring
// match against name, country and description. A blank query returns the
// full catalog. Results keep insertion order, there is no ranking.
func (s *Store) SearchDestinations(ctx context.Context, query string) ([]models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return db.Destinations, nil
	}

	q := strings.ToLower(query)
	matched := make([]models.Destination, 0, len(db.Destinations))
	for _, dest := range db.Destinations {
		if strings.Contains(strings.ToLower(dest.Name), q) ||
			strings.Contains(strings.ToLower(dest.Country), q) ||
			strings.Contains(strings.ToLower(dest.Description), q) {
			matched = append(matched, dest)
		}
	}
	return matched, nil
}

// GetDestination returns the destination with the given id, or nil when absent
func (s *Store) GetDestination(ctx context.Context, id string) (*models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range db.Destinations {
		if db.Destinations[i].ID == id {
			return &db.Destinations[i], nil
		}
	}
	return nil, nil
}

// CreateTripPlan appends a new trip plan with a fresh id and stamped
// createdAt/updatedAt
func (s *Store) CreateTripPlan(ctx context.Context, data models.NewTripPlan) (*models.TripPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trip := models.TripPlan{
		ID:          newID(),
		UserID:      data.UserID,
		Destination: data.Destination,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Travelers:   data.Travelers,
		Budget:      data.Budget,
		Mood:        data.Mood,
		Itinerary:   data.Itinerary,
		TotalCost:   data.TotalCost,
		Status:      data.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	db.TripPlans = append(db.TripPlans, trip)

	if err := s.save(ctx, db); err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetTripPlan returns the trip plan with the given id, or nil when absent
func (s *Store) GetTripPlan(ctx context.Context, id string) (*models.TripPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range db.TripPlans {
		if db.TripPlans[i].ID == id {
			return &db.TripPlans[i], nil
		}
	}
	return nil, nil
}

// GetUserTripPlans returns all trip plans belonging to a user
func (s *Store) GetUserTripPlans(ctx context.Context, userID string) ([]models.TripPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	trips := make([]models.TripPlan, 0)
	for _, trip := range db.TripPlans {
		if trip.UserID == userID {
			trips = append(trips, trip)
		}
	}
	return trips, nil
}

// UpdateTripPlan merges the set fields of the update into the stored trip
// and restamps updatedAt. The merge is shallow: a set itinerary replaces
// the stored one wholesale. Returns nil when the id is absent, createdAt
// is never touched.
func (s *Store) UpdateTripPlan(ctx context.Context, id string, update models.TripPlanUpdate) (*models.TripPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range db.TripPlans {
		if db.TripPlans[i].ID != id {
			continue
		}

		trip := &db.TripPlans[i]
		if update.Destination != nil {
			trip.Destination = *update.Destination
		}
		if update.StartDate != nil {
			trip.StartDate = *update.StartDate
		}
		if update.EndDate != nil {
			trip.EndDate = *update.EndDate
		}
		if update.Travelers != nil {
			trip.Travelers = *update.Travelers
		}
		if update.Budget != nil {
			trip.Budget = *update.Budget
		}
		if update.Mood != nil {
			trip.Mood = *update.Mood
		}
		if update.Itinerary != nil {
			trip.Itinerary = *update.Itinerary
		}
		if update.TotalCost != nil {
			trip.TotalCost = *update.TotalCost
		}
		if update.Status != nil {
			trip.Status = *update.Status
		}
		trip.UpdatedAt = time.Now()

		if err := s.save(ctx, db); err != nil {
			return nil, err
		}

		updated := *trip
		return &updated, nil
	}

	return nil, nil
}

// GetBestTravelDates suggests travel dates for a destination matched by a
// case-insensitive substring of its name. Unknown destinations get the
// advisor's fixed fallback dates.
func (s *Store) GetBestTravelDates(ctx context.Context, destination string) ([]string, error) {
	dest, err := s.findDestination(ctx, destination)
	if err != nil {
		return nil, err
	}
	return s.advisor.SuggestDates(ctx, dest)
}

// SuggestedDates returns the suggested dates annotated for display
func (s *Store) SuggestedDates(ctx context.Context, destination string) ([]suggest.DateInsight, error) {
	dates, err := s.GetBestTravelDates(ctx, destination)
	if err != nil {
		return nil, err
	}

	insights := make([]suggest.DateInsight, len(dates))
	for i, date := range dates {
		insights[i] = s.advisor.Annotate(date)
	}
	return insights, nil
}

func (s *Store) findDestination(ctx context.Context, name string) (*models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(name)
	for i := range db.Destinations {
		if strings.Contains(strings.ToLower(db.Destinations[i].Name), q) {
			return &db.Destinations[i], nil
		}
	}
	return nil, nil
}

// GenerateItinerary builds a day-by-day plan for the trip parameters
func (s *Store) GenerateItinerary(ctx context.Context, params models.ItineraryParams) ([]models.DayPlan, error) {
	return s.generator.BuildItinerary(ctx, params)
}

// CreateBooking appends a booking with a generated reference and stamped
// createdAt. Bookings are append-only, there is no update path.
func (s *Store) CreateBooking(ctx context.Context, data models.NewBooking) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		TripID:           data.TripID,
		UserID:           data.UserID,
		TotalAmount:      data.TotalAmount,
		PaymentStatus:    data.PaymentStatus,
		BookingReference: newBookingReference(),
		CreatedAt:        time.Now(),
	}
	db.Bookings = append(db.Bookings, booking)

	if err := s.save(ctx, db); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBooking returns the booking with the given reference, or nil when absent
func (s *Store) GetBooking(ctx context.Context, reference string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range db.Bookings {
		if db.Bookings[i].BookingReference == reference {
			return &db.Bookings[i], nil
		}
	}
	return nil, nil
}

// ClearAll drops the persisted blob. The next load reseeds the defaults.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Delete(ctx)
}

// Export returns the full collection set as indented JSON
func (s *Store) Export(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	raw, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode planner data: %w", err)
	}
	return string(raw), nil
}

func newID() string {
	return uuid.New().String()
}

// newBookingReference builds a "TRP" prefixed reference token
func newBookingReference() string {
	return "TRP" + strings.ToUpper(uuid.New().String()[:8])
}
