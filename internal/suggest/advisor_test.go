package suggest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sapar/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSuggestDatesFallback(t *testing.T) {
	advisor := NewMockAdvisor(0)

	dates, err := advisor.SuggestDates(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2024-12-15", "2024-12-22", "2024-12-29"}, dates)
}

func TestSuggestDatesFromBestVisitMonths(t *testing.T) {
	advisor := NewMockAdvisor(0)
	dest := &models.Destination{
		Name:            "Goa",
		BestTimeToVisit: []string{"November", "December"},
	}

	dates, err := advisor.SuggestDates(context.Background(), dest)
	assert.NoError(t, err)

	year := time.Now().Year()
	assert.Equal(t, []string{
		fmt.Sprintf("%d-11-15", year),
		fmt.Sprintf("%d-11-22", year),
		fmt.Sprintf("%d-12-15", year),
		fmt.Sprintf("%d-12-22", year),
	}, dates)
}

func TestSuggestDatesTruncatedToFive(t *testing.T) {
	advisor := NewMockAdvisor(0)
	dest := &models.Destination{
		Name:            "Rajasthan",
		BestTimeToVisit: []string{"October", "November", "December", "January"},
	}

	dates, err := advisor.SuggestDates(context.Background(), dest)
	assert.NoError(t, err)
	assert.Len(t, dates, 5)
}

func TestSuggestDatesSkipsUnknownMonths(t *testing.T) {
	advisor := NewMockAdvisor(0)
	dest := &models.Destination{
		BestTimeToVisit: []string{"Smarch", "November"},
	}

	dates, err := advisor.SuggestDates(context.Background(), dest)
	assert.NoError(t, err)
	assert.Len(t, dates, 2)
}

func TestSuggestDatesCancelled(t *testing.T) {
	advisor := NewMockAdvisor(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := advisor.SuggestDates(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnnotateWeatherBands(t *testing.T) {
	advisor := NewMockAdvisor(0)

	tests := []struct {
		date    string
		weather string
	}{
		{"2026-12-15", "Perfect weather"},
		{"2026-01-22", "Perfect weather"},
		{"2026-07-15", "Monsoon season"},
		{"2026-04-15", "Pleasant climate"},
	}

	for _, tt := range tests {
		insight := advisor.Annotate(tt.date)
		assert.Equal(t, tt.weather, insight.Weather, "date %s", tt.date)
		assert.Contains(t, reasons, insight.Reason)
	}
}

func TestAnnotateWeekend(t *testing.T) {
	advisor := NewMockAdvisor(0)

	// 2024-12-15 was a Sunday, 2024-12-17 a Tuesday
	assert.True(t, advisor.Annotate("2024-12-15").Weekend)
	assert.False(t, advisor.Annotate("2024-12-17").Weekend)
}
