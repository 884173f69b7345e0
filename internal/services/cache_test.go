package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtiwari/recovery-insights/internal/models"
)

func newTestCacheService(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCacheService(client, quietLogger()), srv
}

func TestCacheDisabledIsAlwaysAMiss(t *testing.T) {
	cache := NewCacheService(nil, quietLogger())
	assert.False(t, cache.Enabled())

	var out string
	assert.ErrorIs(t, cache.Get(context.Background(), "squad:v1", &out), ErrCacheMiss)
	cache.Set(context.Background(), "squad:v1", "xi", time.Minute)
	assert.ErrorIs(t, cache.Get(context.Background(), "squad:v1", &out), ErrCacheMiss)
}

func TestCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCacheService(t)
	ctx := context.Background()

	var out map[string]int
	require.ErrorIs(t, cache.Get(ctx, "squad:v1", &out), ErrCacheMiss)

	cache.Set(ctx, "squad:v1", map[string]int{"GK": 1, "DEF": 4}, time.Minute)
	require.NoError(t, cache.Get(ctx, "squad:v1", &out))
	assert.Equal(t, map[string]int{"GK": 1, "DEF": 4}, out)
}

func TestCacheColdMissesDoNotTripBreaker(t *testing.T) {
	cache, srv := newTestCacheService(t)
	ctx := context.Background()

	// A cold cache misses on every key. None of those are Redis
	// failures, so the breaker stays closed and writes still land.
	var out string
	for i := 0; i < 5; i++ {
		require.ErrorIs(t, cache.Get(ctx, fmt.Sprintf("squad:v%d", i), &out), ErrCacheMiss)
	}

	cache.Set(ctx, "squad:warm", "xi", time.Minute)
	assert.True(t, srv.Exists("squad:warm"), "the write must reach redis after cold misses")
	require.NoError(t, cache.Get(ctx, "squad:warm", &out))
	assert.Equal(t, "xi", out)
}

func TestCacheTransportFailuresDegradeToMisses(t *testing.T) {
	cache, srv := newTestCacheService(t)
	ctx := context.Background()

	srv.Close()
	var out string
	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, cache.Get(ctx, "squad:v1", &out), ErrCacheMiss)
	}
	// The breaker is open by now; operations keep degrading cleanly.
	assert.ErrorIs(t, cache.Get(ctx, "squad:v1", &out), ErrCacheMiss)
	cache.Set(ctx, "squad:v1", "xi", time.Minute)
}

func TestSquadCacheKeyIsStable(t *testing.T) {
	reqs := models.DefaultRequirements()
	a := SquadCacheKey("v1", -0.25, reqs)
	b := SquadCacheKey("v1", -0.25, reqs)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, SquadCacheKey("v2", -0.25, reqs))
	assert.NotEqual(t, a, SquadCacheKey("v1", 0.0, reqs))
}
