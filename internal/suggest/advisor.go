package suggest

import (
	"context"
	"math/rand"
	"time"

	"sapar/internal/models"
)

// Advisor suggests travel dates for a destination. The planner depends on
// this interface so a real model or rule engine can replace the mock
// without touching callers.
type Advisor interface {
	// SuggestDates returns up to five ISO dates ordered by the
	// destination's best-visit months. A nil destination yields the
	// fixed fallback dates.
	SuggestDates(ctx context.Context, dest *models.Destination) ([]string, error)
	// Annotate enriches a suggested ISO date for display.
	Annotate(date string) DateInsight
}

// DateInsight is a suggested date with its display annotations
type DateInsight struct {
	Date    string `json:"date"`
	Weather string `json:"weather"`
	Reason  string `json:"reason"`
	Weekend bool   `json:"weekend"`
}

const maxSuggestions = 5

// Dates returned when the requested destination is not in the catalog
var fallbackDates = []string{"2024-12-15", "2024-12-22", "2024-12-29"}

var reasons = []string{
	"Lower crowd levels",
	"Best weather conditions",
	"Festival season",
	"Ideal temperature",
	"Clear skies expected",
}

type mockAdvisor struct {
	delay time.Duration
}

// NewMockAdvisor returns an Advisor producing canned suggestions after a
// simulated processing delay.
func NewMockAdvisor(delay time.Duration) Advisor {
	return &mockAdvisor{delay: delay}
}

func (a *mockAdvisor) SuggestDates(ctx context.Context, dest *models.Destination) ([]string, error) {
	if err := wait(ctx, a.delay); err != nil {
		return nil, err
	}

	if dest == nil {
		out := make([]string, len(fallbackDates))
		copy(out, fallbackDates)
		return out, nil
	}

	year := time.Now().Year()
	dates := make([]string, 0, 2*len(dest.BestTimeToVisit))
	for _, month := range dest.BestTimeToVisit {
		parsed, err := time.Parse("January", month)
		if err != nil {
			continue
		}
		for _, day := range []int{15, 22} {
			d := time.Date(year, parsed.Month(), day, 0, 0, 0, 0, time.UTC)
			dates = append(dates, d.Format("2006-01-02"))
		}
	}

	if len(dates) > maxSuggestions {
		dates = dates[:maxSuggestions]
	}
	return dates, nil
}

func (a *mockAdvisor) Annotate(date string) DateInsight {
	insight := DateInsight{
		Date:   date,
		Reason: reasons[rand.Intn(len(reasons))],
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return insight
	}

	switch parsed.Month() {
	case time.December, time.January, time.February:
		insight.Weather = "Perfect weather"
	case time.July, time.August, time.September:
		insight.Weather = "Monsoon season"
	default:
		insight.Weather = "Pleasant climate"
	}

	wd := parsed.Weekday()
	insight.Weekend = wd == time.Saturday || wd == time.Sunday

	return insight
}

// wait sleeps for the simulated processing delay, giving up early when the
// context is cancelled.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
