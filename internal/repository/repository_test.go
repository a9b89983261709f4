package repository_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/barter-match/internal/db"
	"github.com/oggyb/barter-match/internal/engine"
	svcErr "github.com/oggyb/barter-match/internal/errors"
	"github.com/oggyb/barter-match/internal/repository"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func TestSwipeUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewSwipeRepository(dbase)

	// insert like
	err := repo.Upsert(ctx, engine.Swipe{FromUserID: "u1", ListingID: "l1", OwnerID: "me", Action: engine.Like})
	assert.NoError(t, err)

	// overwrite with pass
	err = repo.Upsert(ctx, engine.Swipe{FromUserID: "u1", ListingID: "l1", OwnerID: "me", Action: engine.Pass})
	assert.NoError(t, err)

	var rows []db.Swipe
	require.NoError(t, dbase.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Liked)
}

func TestSwipeMutualAndCounts(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewSwipeRepository(dbase)

	_ = repo.Upsert(ctx, engine.Swipe{FromUserID: "u1", ListingID: "l1", OwnerID: "me", Action: engine.Like})
	_ = repo.Upsert(ctx, engine.Swipe{FromUserID: "u1", ListingID: "l2", OwnerID: "me", Action: engine.Like})
	_ = repo.Upsert(ctx, engine.Swipe{FromUserID: "u2", ListingID: "l1", OwnerID: "me", Action: engine.Pass})

	liked, err := repo.HasLikedListingOf(ctx, "u1", "me")
	assert.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.HasLikedListingOf(ctx, "u2", "me")
	assert.NoError(t, err)
	assert.False(t, liked)

	liked, err = repo.HasLikedListingOf(ctx, "me", "u1")
	assert.NoError(t, err)
	assert.False(t, liked, "direction matters")

	n, err := repo.CountLikesReceived(ctx, "me")
	assert.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestListingQueryFilters(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewListingRepository(dbase)

	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	v := 42.5
	require.NoError(t, repo.Create(ctx, engine.Listing{ID: "a", OwnerID: "u1", Kind: engine.KindGoods, Title: "a", Tags: []string{"x", "y"}, EstimatedValue: &v, Availability: engine.Available, CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, engine.Listing{ID: "b", OwnerID: "u1", Kind: engine.KindGoods, Title: "b", ValidUntil: &past, Availability: engine.Available, CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, engine.Listing{ID: "c", OwnerID: "me", Kind: engine.KindGoods, Title: "c", Availability: engine.Available, CreatedAt: now}))

	got, err := repo.Query(ctx, engine.ListingFilter{ExcludeOwner: "me", ExcludeHidden: true, ExcludeSold: true, ActiveAt: &now})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, []string{"x", "y"}, got[0].Tags)
	require.NotNil(t, got[0].EstimatedValue)
	assert.InDelta(t, 42.5, *got[0].EstimatedValue, 0.001)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, svcErr.ErrNotFound)
}

func TestMatchCreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	m, created, err := repo.CreateIfAbsent(ctx, engine.Match{ID: "m1", UserA: "me", UserB: "u1", CreatedAt: time.Now()}, "hello")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "m1", m.ID)

	// same pair in the other order
	m, created, err = repo.CreateIfAbsent(ctx, engine.Match{ID: "m2", UserA: "u1", UserB: "me", CreatedAt: time.Now()}, "hello")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, "me", m.UserA)

	var msgs int64
	require.NoError(t, dbase.Model(&db.Message{}).Count(&msgs).Error)
	assert.EqualValues(t, 1, msgs)

	_, err = repo.GetByID(ctx, "m2")
	assert.ErrorIs(t, err, svcErr.ErrNotFound)
}

func TestMatchListByUserPagination(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	base := time.Now().Add(-time.Hour)
	for i, other := range []string{"u1", "u2", "u3"} {
		_, _, err := repo.CreateIfAbsent(ctx, engine.Match{
			ID: fmt.Sprintf("m%d", i+1), UserA: "me", UserB: other, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}, "")
		require.NoError(t, err)
	}
	// not mine
	_, _, err := repo.CreateIfAbsent(ctx, engine.Match{ID: "m9", UserA: "u1", UserB: "u2", CreatedAt: base}, "")
	require.NoError(t, err)

	page, next, err := repo.ListByUser(ctx, "me", nil, 2)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, []string{"m3", "m2"}, matchIDs(page))

	page, next, err = repo.ListByUser(ctx, "me", next, 2)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, []string{"m1"}, matchIDs(page))
}

func TestChatUnreadAndMarkRead(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewChatRepository(dbase)

	last, err := repo.LastMessage(ctx, "m1")
	require.NoError(t, err)
	assert.Nil(t, last)

	_, err = repo.AppendMessage(ctx, "m1", "", "greeting")
	require.NoError(t, err)
	_, err = repo.AppendMessage(ctx, "m1", "me", "hi")
	require.NoError(t, err)

	n, err := repo.UnreadCount(ctx, "m1", "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = repo.UnreadCount(ctx, "m1", "me")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, repo.MarkRead(ctx, "m1", "u1"))
	require.NoError(t, repo.MarkRead(ctx, "m1", "u1"))
	n, err = repo.UnreadCount(ctx, "m1", "u1")
	require.NoError(t, err)
	assert.Zero(t, n)

	last, err = repo.LastMessage(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "hi", last.Text)

	count, err := repo.MessageCount(ctx, "m1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestDealCompareAndSetStatus(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDealRepository(dbase)

	v := 10.0
	d := engine.Deal{
		ID: "d1", MatchID: "m1", ProposerUserID: "me", Status: engine.DealProposed,
		Offer:     []engine.DealItem{{ID: "i1", Title: "bike", EstimatedValue: &v}, {ID: "i2", Title: "lamp"}},
		Request:   []engine.DealItem{{ID: "i3", Title: "desk"}},
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, d))

	ok, err := repo.CompareAndSetStatus(ctx, "d1", engine.DealProposed, engine.DealAccepted)
	require.NoError(t, err)
	assert.True(t, ok)

	// stale expectation loses
	ok, err = repo.CompareAndSetStatus(ctx, "d1", engine.DealProposed, engine.DealCancelled)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, engine.DealAccepted, got.Status)
	require.Len(t, got.Offer, 2)
	assert.Equal(t, "bike", got.Offer[0].Title)
	assert.Equal(t, "lamp", got.Offer[1].Title)
	require.Len(t, got.Request, 1)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, svcErr.ErrNotFound)
}

func matchIDs(ms []engine.Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}
