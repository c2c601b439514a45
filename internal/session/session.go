package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "sapar/internal/errors"
	"sapar/internal/logger"
	"sapar/internal/models"
	"sapar/internal/payments"
	"sapar/internal/store"
	"sapar/internal/suggest"

	"github.com/go-playground/validator/v10"
)

// defaultUserID is the seed user addressed when no user is active
const defaultUserID = "1"

// State is the derived session state consumed by presentation code. It is
// a point-in-time copy: mutating it does not affect the session.
type State struct {
	CurrentUser  *models.User
	CurrentTrip  *models.TripPlan
	Destinations []models.Destination
	IsLoading    bool
	LastError    string
}

// Session orchestrates planner actions on top of the store and keeps the
// session-scoped derived state. Every operation returns its result and
// error directly; LastError mirrors the most recent failure for UI
// bindings that render a shared error slot.
type Session struct {
	store    *store.Store
	gateway  payments.Gateway
	validate *validator.Validate

	mu    sync.Mutex
	state State
}

func New(st *store.Store, gateway payments.Gateway) *Session {
	return &Session{
		store:    st,
		gateway:  gateway,
		validate: validator.New(),
	}
}

// Snapshot returns a copy of the current session state
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := State{
		IsLoading: s.state.IsLoading,
		LastError: s.state.LastError,
	}
	if s.state.CurrentUser != nil {
		user := *s.state.CurrentUser
		snap.CurrentUser = &user
	}
	if s.state.CurrentTrip != nil {
		trip := *s.state.CurrentTrip
		snap.CurrentTrip = &trip
	}
	snap.Destinations = make([]models.Destination, len(s.state.Destinations))
	copy(snap.Destinations, s.state.Destinations)
	return snap
}

// begin marks the session busy and clears the previous error
func (s *Session) begin() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.LastError = ""
	s.mu.Unlock()
}

// finish clears the busy flag and records the outcome
func (s *Session) finish(err error) {
	s.mu.Lock()
	s.state.IsLoading = false
	if err != nil {
		s.state.LastError = err.Error()
	}
	s.mu.Unlock()
}

// Init loads the seed user and the full destination listing. A failure is
// recorded and returned but leaves the session usable.
func (s *Session) Init(ctx context.Context) error {
	s.begin()

	user, err := s.store.GetUser(ctx, defaultUserID)
	if err != nil {
		err = fmt.Errorf("failed to initialize session: %w", err)
		logger.WithContext(ctx).Error("Failed to initialize session", "error", err)
		s.finish(err)
		return err
	}
	if user != nil {
		s.mu.Lock()
		s.state.CurrentUser = user
		s.mu.Unlock()
	}

	destinations, err := s.store.SearchDestinations(ctx, "")
	if err != nil {
		err = fmt.Errorf("failed to load destinations: %w", err)
		logger.WithContext(ctx).Error("Failed to load destinations", "error", err)
		s.finish(err)
		return err
	}

	s.mu.Lock()
	s.state.Destinations = destinations
	s.mu.Unlock()
	s.finish(nil)

	logger.WithUserID(defaultUserID).Info("Session initialized",
		"destinations", len(destinations))
	return nil
}

// SetCurrentUser replaces the active user
func (s *Session) SetCurrentUser(user *models.User) {
	s.mu.Lock()
	s.state.CurrentUser = user
	s.mu.Unlock()
}

// SetCurrentTrip replaces the active trip
func (s *Session) SetCurrentTrip(trip *models.TripPlan) {
	s.mu.Lock()
	s.state.CurrentTrip = trip
	s.mu.Unlock()
}

// SearchDestinations filters the catalog and refreshes the destination
// listing in the session state. On failure the listing is left unchanged
// and an empty result is returned alongside the error.
func (s *Session) SearchDestinations(ctx context.Context, query string) ([]models.Destination, error) {
	s.begin()

	results, err := s.store.SearchDestinations(ctx, query)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to search destinations", "error", err, "query", query)
		s.finish(err)
		return []models.Destination{}, err
	}

	s.mu.Lock()
	s.state.Destinations = results
	s.mu.Unlock()
	s.finish(nil)
	return results, nil
}

// CreateTrip persists a new trip plan and makes it the active trip
func (s *Session) CreateTrip(ctx context.Context, data models.NewTripPlan) (*models.TripPlan, error) {
	s.begin()

	if err := s.validate.Struct(data); err != nil {
		err = fmt.Errorf("invalid trip data: %w", err)
		s.finish(err)
		return nil, err
	}

	trip, err := s.store.CreateTripPlan(ctx, data)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to create trip", "error", err)
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.state.CurrentTrip = trip
	s.mu.Unlock()
	s.finish(nil)
	return trip, nil
}

// UpdateTrip applies a partial update. The active trip is replaced only
// when the updated id matches it.
func (s *Session) UpdateTrip(ctx context.Context, id string, update models.TripPlanUpdate) (*models.TripPlan, error) {
	s.begin()

	trip, err := s.store.UpdateTripPlan(ctx, id, update)
	if err != nil {
		logger.WithTripID(id).Error("Failed to update trip", "error", err)
		s.finish(err)
		return nil, err
	}
	if trip == nil {
		s.finish(apperrors.ErrTripNotFound)
		return nil, apperrors.ErrTripNotFound
	}

	s.mu.Lock()
	if s.state.CurrentTrip != nil && s.state.CurrentTrip.ID == id {
		s.state.CurrentTrip = trip
	}
	s.mu.Unlock()
	s.finish(nil)
	return trip, nil
}

// GetBestTravelDates suggests travel dates for a destination
func (s *Session) GetBestTravelDates(ctx context.Context, destination string) ([]string, error) {
	s.begin()

	dates, err := s.store.GetBestTravelDates(ctx, destination)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to get travel date suggestions",
			"error", err, "destination", destination)
		s.finish(err)
		return []string{}, err
	}

	s.finish(nil)
	return dates, nil
}

// SuggestedDates returns travel date suggestions annotated for display.
// The first entry is the best match.
func (s *Session) SuggestedDates(ctx context.Context, destination string) ([]suggest.DateInsight, error) {
	s.begin()

	insights, err := s.store.SuggestedDates(ctx, destination)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to get travel date suggestions",
			"error", err, "destination", destination)
		s.finish(err)
		return nil, err
	}

	s.finish(nil)
	return insights, nil
}

// GenerateItinerary builds a day-by-day plan and attaches it to the active
// trip, creating a draft trip when none is active. The trip total is the
// sum of the per-day costs.
func (s *Session) GenerateItinerary(ctx context.Context, params models.ItineraryParams) (*models.TripPlan, error) {
	s.begin()

	if err := s.validate.Struct(params); err != nil {
		err = fmt.Errorf("invalid itinerary params: %w", err)
		s.finish(err)
		return nil, err
	}

	itinerary, err := s.store.GenerateItinerary(ctx, params)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to generate itinerary", "error", err)
		s.finish(err)
		return nil, err
	}

	totalCost := 0
	for _, day := range itinerary {
		totalCost += day.TotalCost
	}

	s.mu.Lock()
	current := s.state.CurrentTrip
	user := s.state.CurrentUser
	s.mu.Unlock()

	var trip *models.TripPlan
	if current != nil {
		status := models.TripStatusDraft
		trip, err = s.store.UpdateTripPlan(ctx, current.ID, models.TripPlanUpdate{
			Itinerary: &itinerary,
			TotalCost: &totalCost,
			Status:    &status,
		})
		if err == nil && trip == nil {
			err = apperrors.ErrTripNotFound
		}
	} else {
		userID := defaultUserID
		if user != nil {
			userID = user.ID
		}
		now := time.Now()
		trip, err = s.store.CreateTripPlan(ctx, models.NewTripPlan{
			UserID:      userID,
			Destination: params.Destination,
			StartDate:   now.Format("2006-01-02"),
			EndDate:     now.AddDate(0, 0, params.Days).Format("2006-01-02"),
			Travelers:   params.Travelers,
			Budget:      params.Budget,
			Mood:        params.Mood,
			Itinerary:   itinerary,
			TotalCost:   totalCost,
			Status:      models.TripStatusDraft,
		})
	}
	if err != nil {
		logger.WithContext(ctx).Error("Failed to persist generated itinerary", "error", err)
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.state.CurrentTrip = trip
	s.mu.Unlock()
	s.finish(nil)
	return trip, nil
}

// BookTrip charges the simulated gateway, records the booking and marks
// the trip booked. The booking row and the status update are two
// independent writes with no atomicity between them.
func (s *Session) BookTrip(ctx context.Context, tripID string, amount int) (string, error) {
	s.begin()

	trip, err := s.store.GetTripPlan(ctx, tripID)
	if err != nil {
		s.finish(err)
		return "", err
	}
	if trip == nil {
		s.finish(apperrors.ErrTripNotFound)
		return "", apperrors.ErrTripNotFound
	}

	s.mu.Lock()
	user := s.state.CurrentUser
	s.mu.Unlock()
	userID := defaultUserID
	if user != nil {
		userID = user.ID
	}

	receipt, err := s.gateway.Charge(ctx, payments.ChargeRequest{
		TripID: tripID,
		UserID: userID,
		Amount: amount,
	})
	if err != nil {
		logger.WithTripID(tripID).Error("Failed to charge payment", "error", err)
		s.finish(err)
		return "", err
	}

	booking, err := s.store.CreateBooking(ctx, models.NewBooking{
		TripID:        tripID,
		UserID:        userID,
		TotalAmount:   amount,
		PaymentStatus: receipt.Status,
	})
	if err != nil {
		logger.WithTripID(tripID).Error("Failed to create booking", "error", err)
		s.finish(err)
		return "", err
	}

	status := models.TripStatusBooked
	updated, err := s.store.UpdateTripPlan(ctx, tripID, models.TripPlanUpdate{Status: &status})
	if err != nil {
		logger.WithTripID(tripID).Error("Failed to mark trip booked", "error", err)
		s.finish(err)
		return "", err
	}

	s.mu.Lock()
	if s.state.CurrentTrip != nil && s.state.CurrentTrip.ID == tripID && updated != nil {
		s.state.CurrentTrip = updated
	}
	s.mu.Unlock()
	s.finish(nil)

	logger.WithTripID(tripID).Info("Trip booked",
		"reference", booking.BookingReference,
		"amount", amount,
		"payment_status", booking.PaymentStatus)
	return booking.BookingReference, nil
}
