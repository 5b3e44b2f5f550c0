package caching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheService_RoundTrip(t *testing.T) {
	cache := NewMemoryCacheService(10)
	defer cache.Close()
	ctx := context.Background()

	_, found, err := cache.Get(ctx, "overview")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "overview", []byte(`{"occupied":6}`), time.Minute))
	value, found, err := cache.Get(ctx, "overview")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"occupied":6}`, string(value))

	require.NoError(t, cache.Delete(ctx, "overview"))
	_, found, err = cache.Get(ctx, "overview")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCacheService_Expiry(t *testing.T) {
	cache := NewMemoryCacheService(10)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short", []byte("x"), -time.Second))
	_, found, err := cache.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestJSONHelpers(t *testing.T) {
	cache := NewMemoryCacheService(10)
	defer cache.Close()
	ctx := context.Background()

	type snapshot struct {
		Occupied int `json:"occupied"`
	}

	require.NoError(t, SetJSON(ctx, cache, "snap", snapshot{Occupied: 6}, time.Minute))

	var got snapshot
	found, err := GetJSON(ctx, cache, "snap", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 6, got.Occupied)

	found, err = GetJSON(ctx, cache, "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewCacheService_DefaultsToMemory(t *testing.T) {
	cache := NewCacheService("", "", 0)
	defer cache.Close()
	assert.Equal(t, "memory", cache.Backend())
	assert.NoError(t, cache.Ping(context.Background()))
}
