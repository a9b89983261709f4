package engine_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/barter-match/internal/cache"
	"github.com/oggyb/barter-match/internal/config"
	"github.com/oggyb/barter-match/internal/db"
	"github.com/oggyb/barter-match/internal/engine"
	"github.com/oggyb/barter-match/internal/logger"
	"github.com/oggyb/barter-match/internal/repository"
)

//
// Test helpers
//

type sent struct {
	Recipient string
	Kind      engine.NotificationKind
	Payload   map[string]any
}

// recordingNotifier keeps every emitted notification.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sent
}

func (r *recordingNotifier) Emit(_ context.Context, recipient string, kind engine.NotificationKind, payload map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sent{recipient, kind, payload})
	return nil
}

func (r *recordingNotifier) Of(kind engine.NotificationKind) []sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []sent
	for _, s := range r.sent {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

type harness struct {
	DB       *gorm.DB
	Engine   *engine.Engine
	Listings *repository.ListingRepository
	Notifier *recordingNotifier
	Redis    *miniredis.Miniredis
	Cache    *cache.RedisCache
}

// newHarness spins up an in-memory SQLite DB and a miniredis, and wires
// the gorm repositories and Redis cache into an Engine. Each test gets its
// own isolated DB + Redis.
func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWith(t, nil)
}

// newHarnessWith is newHarness with a hook to swap engine dependencies
// before the engine is built.
func newHarnessWith(t *testing.T, adjust func(h *harness, d *engine.Deps)) *harness {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dbase, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(dbase))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	redisCache := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = redisCache.Close() })

	h := &harness{
		DB:       dbase,
		Listings: repository.NewListingRepository(dbase),
		Notifier: &recordingNotifier{},
		Redis:    mr,
		Cache:    redisCache,
	}
	deps := engine.Deps{
		Listings: h.Listings,
		Swipes:   repository.NewSwipeRepository(dbase),
		Matches:  repository.NewMatchRepository(dbase),
		Chat:     repository.NewChatRepository(dbase),
		Deals:    repository.NewDealRepository(dbase),
		Users:    repository.NewUserRepository(dbase),
		Notifier: h.Notifier,
		Feed:     redisCache,
		Likes:    redisCache,
		Logger:   logger.Discard(),
		Greeting: "It's a match!",
	}
	if adjust != nil {
		adjust(h, &deps)
	}
	h.Engine = engine.New(deps)
	return h
}

// seedUsers inserts users with the given ids.
func (h *harness) seedUsers(t *testing.T, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, h.DB.Create(&db.User{
			ID:           id,
			DisplayName:  strings.ToUpper(id),
			Email:        id + "@test.com",
			PasswordHash: "x",
		}).Error)
	}
}

// seedListing inserts an available listing. created orders discovery
// (newest first).
func (h *harness) seedListing(t *testing.T, id, owner string, created time.Time, tags ...string) engine.Listing {
	t.Helper()
	l := engine.Listing{
		ID:           id,
		OwnerID:      owner,
		Kind:         engine.KindGoods,
		Title:        "listing " + id,
		Tags:         tags,
		Availability: engine.Available,
		CreatedAt:    created.UTC(),
	}
	require.NoError(t, h.Listings.Create(context.Background(), l))
	return l
}

// countRows counts rows of a model matching an optional condition.
func (h *harness) countRows(t *testing.T, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := h.DB.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

// match creates a match between a and b through mutual likes and returns it.
func (h *harness) match(t *testing.T, a, b string) *engine.Match {
	t.Helper()
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	la := h.seedListing(t, "la-"+a+"-"+b, a, base)
	lb := h.seedListing(t, "lb-"+a+"-"+b, b, base)

	m, err := h.Engine.RecordSwipe(ctx, b, la.ID, engine.Like)
	require.NoError(t, err)
	require.Nil(t, m)
	m, err = h.Engine.RecordSwipe(ctx, a, lb.ID, engine.Like)
	require.NoError(t, err)
	require.NotNil(t, m)
	return m
}

func ptr(f float64) *float64 { return &f }
