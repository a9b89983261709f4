package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/oggyb/barter-match/internal/config"
	"github.com/oggyb/barter-match/internal/engine"
	"github.com/redis/go-redis/v9"
)

// likeCountTTL bounds the life of a counter from the moment it is filled.
// Reads do not extend it.
const likeCountTTL = time.Hour

// fillLikeCount stores ARGV[1] under KEYS[1] only while the version in
// KEYS[2] still equals ARGV[2].
var fillLikeCount = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[2]) or '0')
if current ~= tonumber(ARGV[2]) then
  return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'EX', ARGV[3])
return 1
`)

var (
	_ engine.LikeCountCache = (*RedisCache)(nil)
	_ engine.ChangeFeed     = (*RedisCache)(nil)
)

// RedisCache backs the likes-received counters and the per-match change
// feed (pub/sub).
type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// KeyForLikeCount generates Redis key for a user's likes-received count
func (c *RedisCache) KeyForLikeCount(userID string) string {
	return fmt.Sprintf("likes:count:%s", userID)
}

// ChannelForMatch is the pub/sub channel of one match.
func (c *RedisCache) ChannelForMatch(matchID string) string {
	return fmt.Sprintf("match:events:%s", matchID)
}

// KeyForLikeCountVersion is bumped by every invalidation of userID's counter.
func (c *RedisCache) KeyForLikeCountVersion(userID string) string {
	return fmt.Sprintf("likes:version:%s", userID)
}

// SetLikeCount fills the counter unless it was invalidated after version
// was read. It reports whether the value was stored.
func (c *RedisCache) SetLikeCount(ctx context.Context, userID string, count, version int64) (bool, error) {
	keys := []string{c.KeyForLikeCount(userID), c.KeyForLikeCountVersion(userID)}
	stored, err := fillLikeCount.Run(ctx, c.Client, keys, count, version, int64(likeCountTTL/time.Second)).Int()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

// GetLikeCount returns the cached counter and the current version. On a
// miss the version is what a later SetLikeCount must present.
func (c *RedisCache) GetLikeCount(ctx context.Context, userID string) (int64, int64, bool, error) {
	vals, err := c.Client.MGet(ctx, c.KeyForLikeCount(userID), c.KeyForLikeCountVersion(userID)).Result()
	if err != nil {
		return 0, 0, false, err
	}
	version, _ := parseInt(vals[1])
	n, ok := parseInt(vals[0])
	if !ok {
		return 0, version, false, nil // missing or corrupt value is a miss
	}
	return n, version, true, nil
}

// InvalidateLikeCount drops the counter and bumps its version so that a
// fill computed before this call is refused.
func (c *RedisCache) InvalidateLikeCount(ctx context.Context, userID string) error {
	_, err := c.Client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, c.KeyForLikeCountVersion(userID))
		p.Del(ctx, c.KeyForLikeCount(userID))
		return nil
	})
	return err
}

func parseInt(v any) (int64, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Publish tells subscribers of matchID that its state changed.
func (c *RedisCache) Publish(ctx context.Context, matchID string) error {
	return c.Client.Publish(ctx, c.ChannelForMatch(matchID), "changed").Err()
}

// Subscribe returns a signal channel for matchID. Signals are coalesced:
// if the reader is behind, extra notifications are dropped. The returned
// func closes the subscription.
func (c *RedisCache) Subscribe(ctx context.Context, matchID string) (<-chan struct{}, func(), error) {
	ps := c.Client.Subscribe(ctx, c.ChannelForMatch(matchID))
	// wait for the subscription to be confirmed so no publish is missed
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, err
	}

	signals := make(chan struct{}, 1)
	go func() {
		defer close(signals)
		for range ps.Channel() {
			select {
			case signals <- struct{}{}:
			default:
			}
		}
	}()
	return signals, func() { _ = ps.Close() }, nil
}
