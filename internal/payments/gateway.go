package payments

import (
	"context"
	"time"

	"sapar/internal/models"

	"github.com/google/uuid"
)

// Gateway charges for a trip. The planner only ever talks to this
// interface so a real payment provider can be dropped in later.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*Receipt, error)
}

type ChargeRequest struct {
	TripID   string
	UserID   string
	Amount   int
	Currency string
}

type Receipt struct {
	PaymentID   string
	Status      string
	Amount      int
	Currency    string
	ProcessedAt time.Time
}

type Config struct {
	Delay    time.Duration
	Currency string
}

// SimulatedGateway approves every charge. There is no real payment
// processing anywhere in the planner, the completed status is hard-coded
// by design of the simulation.
type SimulatedGateway struct {
	delay    time.Duration
	currency string
}

func NewSimulatedGateway(cfg Config) *SimulatedGateway {
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	return &SimulatedGateway{
		delay:    cfg.Delay,
		currency: cfg.Currency,
	}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*Receipt, error) {
	if g.delay > 0 {
		t := time.NewTimer(g.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = g.currency
	}

	return &Receipt{
		PaymentID:   uuid.New().String(),
		Status:      models.PaymentStatusCompleted,
		Amount:      req.Amount,
		Currency:    currency,
		ProcessedAt: time.Now(),
	}, nil
}
