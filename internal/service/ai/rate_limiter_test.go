package ai_test

import (
	"context"
	"testing"

	"chatscan/backend/internal/service/ai"

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

func TestRateLimiter_WaitCancelled(t *testing.T) {
	rl := ai.NewRateLimiter(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Burst is exhausted after the first call, so a cancelled context
	// must surface as an error instead of blocking.
	_ = rl.Wait(context.Background())
	err := rl.Wait(ctx)
	require.Error(t, err)
}
