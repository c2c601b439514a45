package session

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "sapar/internal/errors"
	"sapar/internal/models"
	"sapar/internal/payments"
	"sapar/internal/storage"
	"sapar/internal/store"
	"sapar/internal/suggest"

	"github.com/stretchr/testify/assert"
)

func newTestSession() *Session {
	st := store.New(storage.NewMemoryBackend(),
		suggest.NewMockAdvisor(0),
		suggest.NewMockGenerator(0))
	return New(st, payments.NewSimulatedGateway(payments.Config{}))
}

func testParams() models.ItineraryParams {
	return models.ItineraryParams{
		Destination: "Goa",
		Days:        3,
		Budget:      5000,
		Mood:        "relax",
		Travelers:   2,
	}
}

// failingBackend simulates a storage layer that always errors
type failingBackend struct{}

func (failingBackend) Load(context.Context) ([]byte, error) {
	return nil, errors.New("storage down")
}
func (failingBackend) Save(context.Context, []byte) error { return errors.New("storage down") }
func (failingBackend) Delete(context.Context) error       { return errors.New("storage down") }
func (failingBackend) Close() error                       { return nil }

func TestInit(t *testing.T) {
	sess := newTestSession()

	assert.NoError(t, sess.Init(context.Background()))

	snap := sess.Snapshot()
	assert.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "John Doe", snap.CurrentUser.Name)
	assert.Len(t, snap.Destinations, 3)
	assert.False(t, snap.IsLoading)
	assert.Empty(t, snap.LastError)
}

func TestSearchDestinationsUpdatesState(t *testing.T) {
	sess := newTestSession()
	ctx := context.Background()
	assert.NoError(t, sess.Init(ctx))

	results, err := sess.SearchDestinations(ctx, "goa")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Len(t, sess.Snapshot().Destinations, 1)

	// Blank query restores the full listing
	results, err = sess.SearchDestinations(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchDestinationsFailure(t *testing.T) {
	st := store.New(failingBackend{}, suggest.NewMockAdvisor(0), suggest.NewMockGenerator(0))
	sess := New(st, payments.NewSimulatedGateway(payments.Config{}))

	results, err := sess.SearchDestinations(context.Background(), "goa")
	assert.Error(t, err)
	assert.Empty(t, results)

	snap := sess.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.NotEmpty(t, snap.LastError)
	assert.Empty(t, snap.Destinations) // derived state unchanged on failure
}

func TestGenerateItineraryCreatesDraftTrip(t *testing.T) {
	sess := newTestSession()
	ctx := context.Background()
	assert.NoError(t, sess.Init(ctx))

	trip, err := sess.GenerateItinerary(ctx, testParams())
	assert.NoError(t, err)
	assert.NotNil(t, trip)
	assert.Equal(t, models.TripStatusDraft, trip.Status)
	assert.Equal(t, "1", trip.UserID)
	assert.Equal(t, "Goa", trip.Destination)
	assert.Len(t, trip.Itinerary, 3)
	// 3 days of the 1550 template
	assert.Equal(t, 4650, trip.TotalCost)

	now := time.Now()
	assert.Equal(t, now.Format("2006-01-02"), trip.StartDate)
	assert.Equal(t, now.AddDate(0, 0, 3).Format("2006-01-02"), trip.EndDate)

	snap := sess.Snapshot()
	assert.NotNil(t, snap.CurrentTrip)
	assert.Equal(t, trip.ID, snap.CurrentTrip.ID)

	for i, day := range trip.Itinerary {
		assert.Equal(t, i+1, day.Day)
	}
}

func TestGenerateItineraryUpdatesActiveTrip(t *testing.T) {
	sess := newTestSession()
	ctx := context.Background()
	assert.NoError(t, sess.Init(ctx))

	first, err := sess.GenerateItinerary(ctx, testParams())
	assert.NoError(t, err)

	params := testParams()
	params.Days = 2
	second, err := sess.GenerateItinerary(ctx, params)
	assert.NoError(t, err)

	// Regeneration mutates the active trip rather than creating a new one
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, second.Itinerary, 2)
	assert.Equal(t, 3100, second.TotalCost)
	assert.Equal(t, models.TripStatusDraft, second.Status)
}

func TestGenerateItineraryValidation(t *testing.T) {
	sess := newTestSession()

	params := testParams()
	params.Days = 0
	_, err := sess.GenerateItinerary(context.Background(), params)
	assert.Error(t, err)
	assert.NotEmpty(t, sess.Snapshot().LastError)
}

func TestUpdateTripNotFound(t *testing.T) {
	sess := newTestSession()

	status := models.TripStatusBooked
	_, err := sess.UpdateTrip(context.Background(), "missing", models.TripPlanUpdate{Status: &status})
	assert.ErrorIs(t, err, apperrors.ErrTripNotFound)
	assert.NotEmpty(t, sess.Snapshot().LastError)
}

func TestUpdateTripLeavesOtherTripsAlone(t *testing.T) {
	sess := newTestSession()
	ctx := context.Background()
	assert.NoError(t, sess.Init(ctx))

	active, err := sess.GenerateItinerary(ctx, testParams())
	assert.NoError(t, err)

	other, err := sess.CreateTrip(ctx, models.NewTripPlan{
		UserID:      "1",
		Destination: "Mumbai",
		Travelers:   1,
		Status:      models.TripStatusDraft,
	})
	assert.NoError(t, err)

	// other is now the active trip; updating the first one must not
	// replace it
	mood := "party"
	_, err = sess.UpdateTrip(ctx, active.ID, models.TripPlanUpdate{Mood: &mood})
	assert.NoError(t, err)
	assert.Equal(t, other.ID, sess.Snapshot().CurrentTrip.ID)
}

func TestGetBestTravelDates(t *testing.T) {
	sess := newTestSession()
	ctx := context.Background()

	dates, err := sess.GetBestTravelDates(ctx, "Atlantis")
	assert.NoError(t, err)
	assert.Equal(t, []string{"2024-12-15", "2024-12-22", "2024-12-29"}, dates)
}

func TestSuggestedDatesAnnotated(t *testing.T) {
	sess := newTestSession()

	insights, err := sess.SuggestedDates(context.Background(), "goa")
	assert.NoError(t, err)
	assert.Len(t, insights, 5)
	for _, insight := range insights {
		assert.NotEmpty(t, insight.Date)
		assert.NotEmpty(t, insight.Weather)
		assert.NotEmpty(t, insight.Reason)
	}
}

func TestBookTrip(t *testing.T) {
	sess := newTestSession()
	ctx := context.Background()
	assert.NoError(t, sess.Init(ctx))

	trip, err := sess.GenerateItinerary(ctx, testParams())
	assert.NoError(t, err)

	reference, err := sess.BookTrip(ctx, trip.ID, 2350)
	assert.NoError(t, err)
	assert.NotEmpty(t, reference)

	// Booking row has a completed payment and points at the trip
	db, err := sess.store.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, db.Bookings, 1)
	assert.Equal(t, models.PaymentStatusCompleted, db.Bookings[0].PaymentStatus)
	assert.Equal(t, trip.ID, db.Bookings[0].TripID)
	assert.Equal(t, reference, db.Bookings[0].BookingReference)

	// Trip moved to booked, including the session copy
	booked, err := sess.store.GetTripPlan(ctx, trip.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusBooked, booked.Status)
	assert.Equal(t, models.TripStatusBooked, sess.Snapshot().CurrentTrip.Status)
}

func TestBookTripUnknown(t *testing.T) {
	sess := newTestSession()

	_, err := sess.BookTrip(context.Background(), "missing", 100)
	assert.ErrorIs(t, err, apperrors.ErrTripNotFound)
}
