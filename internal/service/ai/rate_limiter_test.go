package ai_test

import (
	"context"
	"testing"

	"coderev/internal/service/ai"

	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	rl := ai.NewRateLimiter(5)
	require.Equal(t, 5, rl.GetLimit())

	// Test update
	rl.SetLimit(20)
	require.Equal(t, 20, rl.GetLimit())

	// Test default on invalid
	rl.SetLimit(0)
	require.Equal(t, ai.DefaultRateLimit, rl.GetLimit())

	// Test wait (basic)
	err := rl.Wait(context.Background())
	require.NoError(t, err)
}

func TestRateLimiter_DefaultOnInvalidConstruction(t *testing.T) {
	rl := ai.NewRateLimiter(-3)
	require.Equal(t, ai.DefaultRateLimit, rl.GetLimit())
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	rl := ai.NewRateLimiter(1)

	// Drain the single burst slot, then a cancelled context must fail
	// instead of blocking for the next minute.
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, rl.Wait(ctx))
}
