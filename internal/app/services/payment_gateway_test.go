package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedGatewayOutcomeFollowsRoll(t *testing.T) {
	g := NewSimulatedGateway(0, 0.8)

	g.WithRoll(func() float64 { return 0.79 })
	out, err := g.Verify(context.Background(), 1, 500)
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.True(t, strings.HasPrefix(out.TransactionID, "TXN"))
	assert.Len(t, out.TransactionID, 19)
	assert.Empty(t, out.FailureReason)

	g.WithRoll(func() float64 { return 0.80 })
	out, err = g.Verify(context.Background(), 1, 500)
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Empty(t, out.TransactionID)
	assert.NotEmpty(t, out.FailureReason)
}

func TestSimulatedGatewayRateBoundaries(t *testing.T) {
	always := NewSimulatedGateway(0, 1).WithRoll(func() float64 { return 0.999999 })
	out, err := always.Verify(context.Background(), 1, 500)
	require.NoError(t, err)
	assert.True(t, out.Success)

	never := NewSimulatedGateway(0, 0).WithRoll(func() float64 { return 0 })
	out, err = never.Verify(context.Background(), 1, 500)
	require.NoError(t, err)
	assert.False(t, out.Success)
}

func TestSimulatedGatewayHonorsCancellation(t *testing.T) {
	g := NewSimulatedGateway(5*time.Second, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Verify(ctx, 1, 500)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransactionIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newTransactionID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
