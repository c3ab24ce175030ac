package cache_test

import (
	"context"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	"hotel/shared/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedHotel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestMemoryCache_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	store := cache.New(nil, mocks.NewOtel())

	hotels := []cachedHotel{{ID: 1, Name: "Seaside"}, {ID: 2, Name: "Hillside"}}
	require.NoError(t, store.Save(ctx, "hotel:all", hotels, 60))

	var got []cachedHotel
	require.NoError(t, store.Get(ctx, "hotel:all", &got))
	assert.Equal(t, hotels, got)

	got[0].Name = "changed"

	var again []cachedHotel
	require.NoError(t, store.Get(ctx, "hotel:all", &again))
	assert.Equal(t, "Seaside", again[0].Name)
}

func TestMemoryCache_String(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, store.Save(ctx, "greeting", "hello", 0))

	var got string
	require.NoError(t, store.Get(ctx, "greeting", &got))
	assert.Equal(t, "hello", got)
}

func TestMemoryCache_Miss(t *testing.T) {
	store := cache.NewMemoryCache(mocks.NewOtel())

	var got string
	err := store.Get(context.Background(), "absent", &got)

	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, store.Save(ctx, "short", "value", 1))
	time.Sleep(1100 * time.Millisecond)

	var got string
	assert.ErrorIs(t, store.Get(ctx, "short", &got), cache.ErrMiss)
}
