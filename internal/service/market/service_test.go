package market_test

import (
	"context"
	"fmt"
	"math"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/barter-match/internal/app"
	"github.com/oggyb/barter-match/internal/cache"
	"github.com/oggyb/barter-match/internal/config"
	"github.com/oggyb/barter-match/internal/db"
	"github.com/oggyb/barter-match/internal/engine"
	"github.com/oggyb/barter-match/internal/logger"
	pb "github.com/oggyb/barter-match/internal/proto/market"
	"github.com/oggyb/barter-match/internal/repository"
	"github.com/oggyb/barter-match/internal/server"
	"github.com/oggyb/barter-match/internal/service/market"
)

//
// Test helpers
//

// seedMinimal inserts a small deterministic dataset.
//
// Dataset:
//   - Users: me, u1, u2
//   - Listings: l1 (me, tags sport+tech), l2 (u1), l3 (u2, tech)
//   - Swipes: u1 → l1 = like
//
// me liking l2 completes the first mutual like.
func seedMinimal(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	users := []db.User{
		{ID: "me", DisplayName: "Me", Email: "me@test.com", PasswordHash: "x"},
		{ID: "u1", DisplayName: "User One", Email: "u1@test.com", PasswordHash: "x", Location: "Lisbon"},
		{ID: "u2", DisplayName: "User Two", Email: "u2@test.com", PasswordHash: "x"},
	}
	require.NoError(t, gdb.Create(&users).Error)

	listings := repository.NewListingRepository(gdb)
	base := time.Now().Add(-time.Hour)
	for _, l := range []engine.Listing{
		{ID: "l1", OwnerID: "me", Kind: engine.KindGoods, Title: "bike", Tags: []string{"sport", "tech"}, Availability: engine.Available, CreatedAt: base},
		{ID: "l2", OwnerID: "u1", Kind: engine.KindServices, Title: "lessons", Availability: engine.Available, CreatedAt: base.Add(time.Minute)},
		{ID: "l3", OwnerID: "u2", Kind: engine.KindGoods, Title: "laptop", Tags: []string{"tech"}, Availability: engine.Available, CreatedAt: base},
	} {
		require.NoError(t, listings.Create(context.Background(), l))
	}

	require.NoError(t, gdb.Create(&db.Swipe{FromUserID: "u1", ListingID: "l1", OwnerID: "me", Liked: true}).Error)
}

// setupService spins up an in-memory SQLite DB, applies migrations,
// seeds test data, starts a miniredis, and wires everything into a
// Market service instance.
//
// Each test gets its own isolated DB + Redis.
func setupService(t *testing.T) (*market.Service, *app.AppContext) {
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
	seedMinimal(t, dbase)

	// Fake Redis
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	cfg.Market.PageSize = 2

	redisCache := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = redisCache.Close() })

	appCtx := app.New(cfg, dbase, redisCache, nil, logger.Discard())
	return market.NewMarketService(appCtx), appCtx
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, status.Code(err), "error: %v", err)
}

//
// Tests
//

// TestSwipeCreatesMatch checks the me/u1 scenario: u1 already liked l1,
// so me liking l2 yields a match with a greeting.
func TestSwipeCreatesMatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	resp, err := svc.Swipe(ctx, &pb.SwipeRequest{UserId: "me", ListingId: "l2", Action: "LIKE"})
	require.NoError(t, err)
	require.NotNil(t, resp.GetMatch())
	assert.Equal(t, "me", resp.Match.UserA)
	assert.Equal(t, "u1", resp.Match.UserB)

	matches, err := svc.GetMatches(ctx, &pb.GetMatchesRequest{UserId: "me"})
	require.NoError(t, err)
	require.Len(t, matches.Matches, 1)
	assert.GreaterOrEqual(t, matches.Matches[0].UnreadCount, int64(1))
	require.NotNil(t, matches.Matches[0].LastMessage)
	assert.True(t, matches.Matches[0].LastMessage.System)
	require.NotNil(t, matches.Matches[0].Counterpart)
	assert.Equal(t, "User One", matches.Matches[0].Counterpart.DisplayName)
}

func TestSwipeValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.Swipe(ctx, &pb.SwipeRequest{UserId: "me", ListingId: "l2", Action: "MAYBE"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = svc.Swipe(ctx, &pb.SwipeRequest{UserId: "me", ListingId: "l1", Action: "LIKE"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = svc.Swipe(ctx, &pb.SwipeRequest{UserId: "me", ListingId: "nope", Action: "PASS"})
	requireCode(t, err, codes.NotFound)
}

func TestDiscoverRanksByInterest(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	resp, err := svc.Discover(ctx, &pb.DiscoverRequest{UserId: "me", InterestTags: []string{"tech"}})
	require.NoError(t, err)
	require.Len(t, resp.Listings, 2)
	assert.Equal(t, "l3", resp.Listings[0].Id)
	assert.Equal(t, "l2", resp.Listings[1].Id)
	assert.Equal(t, "ACTIVE", resp.Listings[0].Status)

	_, err = svc.Discover(ctx, &pb.DiscoverRequest{UserId: "me", Kind: "CARS"})
	requireCode(t, err, codes.InvalidArgument)
}

func TestDealLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	sw, err := svc.Swipe(ctx, &pb.SwipeRequest{UserId: "me", ListingId: "l2", Action: "LIKE"})
	require.NoError(t, err)
	matchID := sw.Match.Id

	offer, request := 100.0, 50.0
	proposed, err := svc.ProposeDeal(ctx, &pb.ProposeDealRequest{
		UserId:  "me",
		MatchId: matchID,
		Offer:   []*pb.DealItem{{Title: "bike", Kind: "GOODS", EstimatedValue: &offer}},
		Request: []*pb.DealItem{{Title: "lessons", Kind: "SERVICES", EstimatedValue: &request}},
	})
	require.NoError(t, err)
	assert.Equal(t, "PROPOSED", proposed.Deal.Status)
	assert.False(t, proposed.Deal.Summary.IsFair)
	assert.Equal(t, 50.0, proposed.Deal.Summary.SuggestedTopUp)

	_, err = svc.UpdateDealStatus(ctx, &pb.UpdateDealStatusRequest{UserId: "me", DealId: proposed.Deal.Id, Status: "ACCEPTED"})
	requireCode(t, err, codes.PermissionDenied)

	accepted, err := svc.UpdateDealStatus(ctx, &pb.UpdateDealStatusRequest{UserId: "u1", DealId: proposed.Deal.Id, Status: "ACCEPTED"})
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", accepted.Deal.Status)

	_, err = svc.UpdateDealStatus(ctx, &pb.UpdateDealStatusRequest{UserId: "me", DealId: proposed.Deal.Id, Status: "CANCELLED"})
	requireCode(t, err, codes.FailedPrecondition)

	deals, err := svc.ListDeals(ctx, &pb.ListDealsRequest{UserId: "u1", MatchId: matchID})
	require.NoError(t, err)
	require.Len(t, deals.Deals, 1)

	_, err = svc.ListDeals(ctx, &pb.ListDealsRequest{UserId: "u2", MatchId: matchID})
	requireCode(t, err, codes.PermissionDenied)
}

func TestProposeDealRejectsBadItems(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	sw, err := svc.Swipe(ctx, &pb.SwipeRequest{UserId: "me", ListingId: "l2", Action: "LIKE"})
	require.NoError(t, err)
	matchID := sw.Match.Id

	negative, inf := -5.0, math.Inf(1)
	for name, req := range map[string]*pb.ProposeDealRequest{
		"nil item":       {UserId: "me", MatchId: matchID, Offer: []*pb.DealItem{nil}},
		"untitled item":  {UserId: "me", MatchId: matchID, Offer: []*pb.DealItem{{Kind: "GOODS"}}},
		"unknown kind":   {UserId: "me", MatchId: matchID, Offer: []*pb.DealItem{{Title: "bike", Kind: "CARS"}}},
		"negative value": {UserId: "me", MatchId: matchID, Request: []*pb.DealItem{{Title: "bike", EstimatedValue: &negative}}},
		"infinite value": {UserId: "me", MatchId: matchID, Request: []*pb.DealItem{{Title: "bike", EstimatedValue: &inf}}},
		"NaN cash":       {UserId: "me", MatchId: matchID, Offer: []*pb.DealItem{{Title: "bike"}}, CashTopUp: math.NaN()},
		"missing match":  {UserId: "me", Offer: []*pb.DealItem{{Title: "bike"}}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ProposeDeal(ctx, req)
			requireCode(t, err, codes.InvalidArgument)
		})
	}
}

func TestValueSummary(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	resp, err := svc.ValueSummary(ctx, &pb.ValueSummaryRequest{OfferTotal: 100, RequestTotal: 90})
	require.NoError(t, err)
	assert.True(t, resp.IsFair)

	_, err = svc.ValueSummary(ctx, &pb.ValueSummaryRequest{OfferTotal: -1})
	requireCode(t, err, codes.InvalidArgument)
}

// TestLikesCountAndList verifies like counts with cache and liker paging.
func TestLikesCountAndList(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.Swipe(ctx, &pb.SwipeRequest{UserId: "u2", ListingId: "l1", Action: "LIKE"})
	require.NoError(t, err)

	// First call → DB
	resp1, err := svc.CountLikesReceived(ctx, &pb.CountLikesReceivedRequest{UserId: "me"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), resp1.Count)

	// Second call → cache
	resp2, err := svc.CountLikesReceived(ctx, &pb.CountLikesReceivedRequest{UserId: "me"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), resp2.Count)

	likers, err := svc.ListLikers(ctx, &pb.ListLikersRequest{UserId: "me"})
	require.NoError(t, err)
	assert.Len(t, likers.Likers, 2)
}

// TestGRPCRoundTrip drives the service through a real gRPC server over
// bufconn, including the ObserveMatch stream.
func TestGRPCRoundTrip(t *testing.T) {
	_, appCtx := setupService(t)

	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServer(logger.Discard(), market.NewRegistrar(appCtx))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	health, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.Status)

	client := pb.NewMarketServiceClient(conn)

	sw, err := client.Swipe(ctx, &pb.SwipeRequest{UserId: "me", ListingId: "l2", Action: "LIKE"})
	require.NoError(t, err)
	require.NotNil(t, sw.GetMatch())
	matchID := sw.Match.Id

	_, err = client.Swipe(ctx, &pb.SwipeRequest{UserId: "me", ListingId: "l2", Action: "NOPE"})
	requireCode(t, err, codes.InvalidArgument)

	stream, err := client.ObserveMatch(ctx, &pb.MatchRequest{UserId: "me", MatchId: matchID})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, matchID, first.Match.Id)
	assert.EqualValues(t, 1, first.MessageCount)

	_, err = client.SendMessage(ctx, &pb.SendMessageRequest{UserId: "u1", MatchId: matchID, Text: "hello"})
	require.NoError(t, err)

	for {
		snap, err := stream.Recv()
		require.NoError(t, err)
		if snap.MessageCount == 2 {
			assert.Equal(t, "hello", snap.LastMessage.Text)
			assert.EqualValues(t, 2, snap.UnreadCount)
			break
		}
	}

	_, err = client.MarkRead(ctx, &pb.MatchRequest{UserId: "me", MatchId: matchID})
	require.NoError(t, err)

	page, err := client.GetMatches(ctx, &pb.GetMatchesRequest{UserId: "me"})
	require.NoError(t, err)
	require.Len(t, page.Matches, 1)
	assert.Zero(t, page.Matches[0].UnreadCount)
	assert.Empty(t, page.GetNextPaginationToken())

	// optional values keep presence on the wire: zero is not "unset"
	zero := 0.0
	deal, err := client.ProposeDeal(ctx, &pb.ProposeDealRequest{
		UserId:  "me",
		MatchId: matchID,
		Offer:   []*pb.DealItem{{Title: "bike", Kind: "GOODS", EstimatedValue: &zero}},
		Request: []*pb.DealItem{{Title: "lessons"}},
	})
	require.NoError(t, err)
	require.Len(t, deal.GetDeal().GetOffer(), 1)
	require.NotNil(t, deal.Deal.Offer[0].EstimatedValue)
	assert.Zero(t, deal.Deal.Offer[0].GetEstimatedValue())
	assert.Nil(t, deal.Deal.Request[0].EstimatedValue)
	assert.True(t, deal.GetDeal().GetSummary().GetIsFair())
}
