package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_AllowsUnderLimit(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		result, err := store.Allow(ctx, "holder:john", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	}
}

func TestRateLimitStore_BlocksOverLimit(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Allow(ctx, "holder:jane", 3, time.Minute)
		require.NoError(t, err)
	}

	result, err := store.Allow(ctx, "holder:jane", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, int64(0), result.Remaining)
}

func TestRateLimitStore_KeysAreIndependent(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewRateLimitStore(client)
	ctx := context.Background()

	_, err := store.Allow(ctx, "holder:john", 1, time.Minute)
	require.NoError(t, err)

	result, err := store.Allow(ctx, "holder:jane", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}
