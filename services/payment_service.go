package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/south-indian-kitchen/backend/config"
	"github.com/south-indian-kitchen/backend/models"
)

type PaymentResult struct {
	TransactionID string `json:"transaction_id"`
}

// PaymentGateway authorizes a charge. The call may take an unbounded but
// expected-short time; it returns a result or an error, never fails
// silently.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, amount float64, customerEmail string) (*PaymentResult, error)
}

// MockPaymentGateway simulates an external payment provider: it waits for
// a configured latency and then authorizes. Decline lets tests and demos
// exercise the failure branch; the default gateway always approves.
type MockPaymentGateway struct {
	Delay   time.Duration
	Decline bool
}

// NewMockPaymentGateway builds a gateway with the latency taken from
// PAYMENT_DELAY_MS (default 1500ms).
func NewMockPaymentGateway() *MockPaymentGateway {
	delayMS, err := strconv.Atoi(config.Getenv("PAYMENT_DELAY_MS", "1500"))
	if err != nil || delayMS < 0 {
		delayMS = 1500
	}
	return &MockPaymentGateway{Delay: time.Duration(delayMS) * time.Millisecond}
}

func (g *MockPaymentGateway) ProcessPayment(ctx context.Context, amount float64, customerEmail string) (*PaymentResult, error) {
	if err := sleepCtx(ctx, g.Delay); err != nil {
		return nil, err
	}
	if g.Decline {
		return nil, models.ErrPaymentDeclined
	}
	return &PaymentResult{
		TransactionID: fmt.Sprintf("txn_%d", time.Now().UnixMilli()),
	}, nil
}

// sleepCtx waits for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
