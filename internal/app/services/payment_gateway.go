package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GatewayOutcome is the settlement result reported by a payment gateway
type GatewayOutcome struct {
	Success       bool
	TransactionID string
	FailureReason string
}

// PaymentGateway settles a pending payment. The production wiring uses the
// simulated gateway; a real UPI PSP integration replaces this interface's
// implementation and nothing else.
type PaymentGateway interface {
	Verify(ctx context.Context, paymentID int64, amountRupees int) (GatewayOutcome, error)
}

// SimulatedGateway mimics a UPI PSP: it waits roughly as long as a real
// collect request takes to settle, then succeeds at a configured rate.
type SimulatedGateway struct {
	delay       time.Duration
	successRate float64
	roll        func() float64
}

// NewSimulatedGateway creates a gateway that succeeds at successRate after
// the given delay. successRate 1 always succeeds, 0 always fails.
func NewSimulatedGateway(delay time.Duration, successRate float64) *SimulatedGateway {
	return &SimulatedGateway{
		delay:       delay,
		successRate: successRate,
		roll:        rand.Float64,
	}
}

// WithRoll overrides the randomness source, for deterministic tests.
func (g *SimulatedGateway) WithRoll(roll func() float64) *SimulatedGateway {
	g.roll = roll
	return g
}

// Verify waits out the settlement delay and rolls the outcome. Cancelling
// the context abandons the wait.
func (g *SimulatedGateway) Verify(ctx context.Context, paymentID int64, amountRupees int) (GatewayOutcome, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return GatewayOutcome{}, ctx.Err()
		case <-timer.C:
		}
	}

	if g.roll() < g.successRate {
		return GatewayOutcome{
			Success:       true,
			TransactionID: newTransactionID(),
		}, nil
	}

	return GatewayOutcome{
		Success:       false,
		FailureReason: "Payment declined by bank. Please try again.",
	}, nil
}

// newTransactionID mints a UPI-looking transaction reference
func newTransactionID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("TXN%s", strings.ToUpper(raw[:16]))
}
