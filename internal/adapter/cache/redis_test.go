package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storerank/internal/config/configs"
	"storerank/internal/core/domain"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	t.Cleanup(cancel)

	rdb, err := NewRedisClient(ctx, configs.Redis{Addr: mr.Addr(), PoolSize: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedis(rdb), mr
}

func TestRedisRoundTripAndTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t)

	want := []domain.DecoratedProduct{
		{ID: 7, Title: "Lamp", Sponsored: true, ImageVariants: map[string]string{"small": "u"}},
		{ID: 3, Title: "Desk"},
	}
	require.NoError(t, c.Set(ctx, "ranking:global", want, 2*time.Second))

	got, ok, err := c.Get(ctx, "ranking:global")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	mr.FastForward(3 * time.Second)

	_, ok, err = c.Get(ctx, "ranking:global")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisEmptyListIsAHit(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestRedis(t)

	require.NoError(t, c.Set(ctx, "ranking:category:none", nil, time.Minute))
	got, ok, err := c.Get(ctx, "ranking:category:none")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestRedisInvalidatePrefix(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t)

	for i := 0; i < scanBatch+20; i++ {
		key := "ranking:search:q" + strconv.Itoa(i)
		require.NoError(t, c.Set(ctx, key, nil, time.Minute))
	}
	require.NoError(t, mr.Set("other:key", "x"))

	n, err := c.InvalidatePrefix(ctx, "ranking:")
	require.NoError(t, err)
	assert.Equal(t, scanBatch+20, n)
	assert.True(t, mr.Exists("other:key"))
	assert.Len(t, mr.Keys(), 1)
}

func TestRedisCorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t)

	require.NoError(t, mr.Set("ranking:global", "{not json"))
	_, ok, err := c.Get(ctx, "ranking:global")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.False(t, mr.Exists("ranking:global"))
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `rank\*ing\?:`, escapeGlob("rank*ing?:"))
}
