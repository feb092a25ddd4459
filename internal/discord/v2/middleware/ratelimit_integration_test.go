//go:build integration
// +build integration

package middleware_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimitStore_Integration(t *testing.T) {
	store := middleware.NewRedisRateLimitStore(testutils.StartRedisContainer(t))
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		count, err := store.Increment(ctx, "user:ash", time.Second)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	require.Eventually(t, func() bool {
		count, err := store.Increment(ctx, "user:ash", time.Minute)
		return err == nil && count == 1
	}, 5*time.Second, 250*time.Millisecond)

	require.NoError(t, store.Reset(ctx, "user:ash"))
	count, err := store.Increment(ctx, "user:ash", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
