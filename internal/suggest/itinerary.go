package suggest

import (
	"context"
	"strings"
	"time"

	"sapar/internal/models"
)

// Generator builds a day-by-day itinerary for trip parameters. Budget and
// Mood are part of the contract but the mock template ignores them when
// picking activities, so differently-shaped trips currently get the same
// program.
type Generator interface {
	BuildItinerary(ctx context.Context, params models.ItineraryParams) ([]models.DayPlan, error)
}

const (
	activitiesPerDay = 3
	defaultTransport = "Local taxi + Ferry"
)

// Canned activity programs keyed by lowercased destination name. Mumbai is
// the only program so far and doubles as the fallback.
var activityTemplates = map[string][]models.Activity{
	"mumbai": {
		{
			ID:          "1",
			Time:        "9:00 AM",
			Title:       "Gateway of India",
			Type:        "Heritage",
			Duration:    "2 hours",
			Cost:        "₹50",
			Rating:      4.8,
			Description: "Iconic monument overlooking the Arabian Sea",
			Image:       "🏛️",
		},
		{
			ID:          "2",
			Time:        "12:00 PM",
			Title:       "Tiffin Room at Taj Palace",
			Type:        "Dining",
			Duration:    "1.5 hours",
			Cost:        "₹1,200",
			Rating:      4.9,
			Description: "Authentic Maharashtrian cuisine with ocean views",
			Image:       "🍽️",
		},
		{
			ID:          "3",
			Time:        "3:00 PM",
			Title:       "Elephanta Caves",
			Type:        "Adventure",
			Duration:    "4 hours",
			Cost:        "₹300",
			Rating:      4.7,
			Description: "Ancient rock-cut caves via scenic ferry ride",
			Image:       "⛵",
		},
	},
}

type mockGenerator struct {
	delay time.Duration
}

// NewMockGenerator returns a Generator producing templated day plans after
// a simulated processing delay.
func NewMockGenerator(delay time.Duration) Generator {
	return &mockGenerator{delay: delay}
}

func (g *mockGenerator) BuildItinerary(ctx context.Context, params models.ItineraryParams) ([]models.DayPlan, error) {
	if err := wait(ctx, g.delay); err != nil {
		return nil, err
	}

	activities, ok := activityTemplates[strings.ToLower(params.Destination)]
	if !ok {
		activities = activityTemplates["mumbai"]
	}
	if len(activities) > activitiesPerDay {
		activities = activities[:activitiesPerDay]
	}

	dayCost := 0
	for _, activity := range activities {
		dayCost += parseCost(activity.Cost)
	}

	now := time.Now()
	itinerary := make([]models.DayPlan, 0, params.Days)
	for day := 1; day <= params.Days; day++ {
		program := make([]models.Activity, len(activities))
		copy(program, activities)

		itinerary = append(itinerary, models.DayPlan{
			Day:        day,
			Date:       now.AddDate(0, 0, day-1).Format("Jan 2, 2006"),
			Location:   params.Destination,
			Activities: program,
			TotalCost:  dayCost,
			Transport:  defaultTransport,
		})
	}

	return itinerary, nil
}

// parseCost strips everything but digits from a currency-formatted string,
// so "₹1,200" becomes 1200. Unparseable strings count as zero.
func parseCost(cost string) int {
	n := 0
	for _, r := range cost {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	return n
}
