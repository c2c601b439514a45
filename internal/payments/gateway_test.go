package payments

import (
	"context"
	"testing"
	"time"

	"sapar/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedGatewayAlwaysCompletes(t *testing.T) {
	gateway := NewSimulatedGateway(Config{})

	receipt, err := gateway.Charge(context.Background(), ChargeRequest{
		TripID: "trip-1",
		UserID: "1",
		Amount: 2350,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, receipt.Status)
	assert.Equal(t, 2350, receipt.Amount)
	assert.Equal(t, "INR", receipt.Currency)
	assert.NotEmpty(t, receipt.PaymentID)
	assert.False(t, receipt.ProcessedAt.IsZero())
}

func TestSimulatedGatewayCancelled(t *testing.T) {
	gateway := NewSimulatedGateway(Config{Delay: 50 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Charge(ctx, ChargeRequest{Amount: 100})
	assert.ErrorIs(t, err, context.Canceled)
}
