package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barter-match/internal/cache"
	"github.com/oggyb/barter-match/internal/config"
)

func newCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	c := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestLikeCount_MissSetInvalidate(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	_, version, ok, err := c.GetLikeCount(ctx, "me")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, version)

	stored, err := c.SetLikeCount(ctx, "me", 7, version)
	require.NoError(t, err)
	assert.True(t, stored)

	n, _, ok, err := c.GetLikeCount(ctx, "me")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)
	assert.Greater(t, mr.TTL(c.KeyForLikeCount("me")), time.Duration(0))

	require.NoError(t, c.InvalidateLikeCount(ctx, "me"))
	_, version, ok, err = c.GetLikeCount(ctx, "me")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.EqualValues(t, 1, version)
}

func TestLikeCount_FillAfterInvalidateIsRefused(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	_, version, ok, err := c.GetLikeCount(ctx, "me")
	require.NoError(t, err)
	require.False(t, ok)

	// a swipe lands between the miss and the fill
	require.NoError(t, c.InvalidateLikeCount(ctx, "me"))

	stored, err := c.SetLikeCount(ctx, "me", 3, version)
	require.NoError(t, err)
	assert.False(t, stored)
	assert.False(t, mr.Exists(c.KeyForLikeCount("me")))

	_, version, _, err = c.GetLikeCount(ctx, "me")
	require.NoError(t, err)
	stored, err = c.SetLikeCount(ctx, "me", 4, version)
	require.NoError(t, err)
	assert.True(t, stored)
}

func TestLikeCount_ReadDoesNotExtendTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	_, err := c.SetLikeCount(ctx, "me", 2, 0)
	require.NoError(t, err)
	mr.FastForward(40 * time.Minute)
	before := mr.TTL(c.KeyForLikeCount("me"))

	_, _, ok, err := c.GetLikeCount(ctx, "me")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, before, mr.TTL(c.KeyForLikeCount("me")))
}

func TestLikeCount_CorruptValueIsMiss(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	require.NoError(t, mr.Set(c.KeyForLikeCount("me"), "nope"))

	_, _, ok, err := c.GetLikeCount(ctx, "me")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChangeFeed_PublishReachesSubscriber(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, _ := newCache(t)

	signals, closeSub, err := c.Subscribe(ctx, "m1")
	require.NoError(t, err)
	defer closeSub()

	require.NoError(t, c.Publish(ctx, "m2")) // other match, ignored
	require.NoError(t, c.Publish(ctx, "m1"))

	select {
	case <-signals:
	case <-ctx.Done():
		t.Fatal("no signal received")
	}
}
