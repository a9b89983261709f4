package market

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc"

	"github.com/oggyb/barter-match/internal/app"
	"github.com/oggyb/barter-match/internal/engine"
	svcErr "github.com/oggyb/barter-match/internal/errors"
	pb "github.com/oggyb/barter-match/internal/proto/market"
)

const defaultPageSize = 20

// Service implements the Market gRPC API on top of the engine.
// Each method validates the request, applies the request timeout and maps
// engine errors to gRPC status codes.
type Service struct {
	appCtx   *app.AppContext
	engine   *engine.Engine
	validate *validator.Validate
	timeout  time.Duration
	pageSize int
	now      func() time.Time

	pb.UnimplementedMarketServiceServer
}

// NewMarketService creates a new Market service with dependencies from AppContext.
func NewMarketService(appCtx *app.AppContext) *Service {
	s := &Service{
		appCtx:   appCtx,
		engine:   appCtx.Engine,
		validate: newValidator(),
		pageSize: defaultPageSize,
		now:      time.Now,
	}
	if cfg := appCtx.Config; cfg != nil {
		s.timeout = cfg.Market.RequestTimeout
		if cfg.Market.PageSize > 0 {
			s.pageSize = cfg.Market.PageSize
		}
	}
	return s
}

// begin validates req and derives the call context.
func (s *Service) begin(ctx context.Context, method string, req any) (context.Context, context.CancelFunc, error) {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			s.appCtx.Logger.Debug("invalid request", "method", method, "field", verrs[0].Namespace(), "tag", verrs[0].Tag())
		}
		return nil, nil, svcErr.InvalidArgument(err.Error())
	}
	if s.timeout <= 0 {
		ctx, cancel := context.WithCancel(ctx)
		return ctx, cancel, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	return ctx, cancel, nil
}

// fail logs an engine error and converts it to a status error.
func (s *Service) fail(method string, err error) error {
	if svcErr.Retryable(err) || errors.Is(err, context.DeadlineExceeded) {
		s.appCtx.Logger.Error(method+" failed", "err", err)
	} else {
		s.appCtx.Logger.Debug(method+" rejected", "err", err)
	}
	return svcErr.Map(err)
}

func (s *Service) limit(requested int32) int {
	if requested <= 0 {
		return s.pageSize
	}
	return int(requested)
}

// Swipe records a LIKE or PASS on a listing.
//
// Behavior:
//   - Repeating a swipe overwrites the previous action.
//   - A mutual LIKE returns the match; it is created only once.
//
// Example:
//
//	svc.Swipe(ctx, &pb.SwipeRequest{UserId: "me", ListingId: "l2", Action: "LIKE"})
func (s *Service) Swipe(ctx context.Context, req *pb.SwipeRequest) (*pb.SwipeResponse, error) {
	s.appCtx.Logger.Debug("Swipe called", "user", req.UserId, "listing", req.ListingId, "action", req.Action)

	ctx, cancel, err := s.begin(ctx, "Swipe", req)
	if err != nil {
		return nil, err
	}
	defer cancel()

	m, err := s.engine.RecordSwipe(ctx, req.UserId, req.ListingId, engine.SwipeAction(req.Action))
	if err != nil {
		return nil, s.fail("Swipe", err)
	}
	return &pb.SwipeResponse{Match: toPBMatch(m)}, nil
}

// Discover returns swipeable listings, ranked by the caller's interests.
func (s *Service) Discover(ctx context.Context, req *pb.DiscoverRequest) (*pb.DiscoverResponse, error) {
	s.appCtx.Logger.Debug("Discover called", "user", req.UserId, "tags", req.InterestTags, "kind", req.Kind)

	ctx, cancel, err := s.begin(ctx, "Discover", req)
	if err != nil {
		return nil, err
	}
	defer cancel()

	listings, err := s.engine.Discover(ctx, req.UserId, req.InterestTags, engine.ListingKind(req.Kind), int(req.Limit))
	if err != nil {
		return nil, s.fail("Discover", err)
	}

	now := s.now()
	resp := &pb.DiscoverResponse{Listings: make([]*pb.Listing, 0, len(listings))}
	for _, l := range listings {
		resp.Listings = append(resp.Listings, toPBListing(l, now))
	}
	return resp, nil
}

// GetMatches pages through the caller's matches with the last message,
// unread count and counterpart profile of each.
func (s *Service) GetMatches(ctx context.Context, req *pb.GetMatchesRequest) (*pb.GetMatchesResponse, error) {
	s.appCtx.Logger.Debug("GetMatches called", "user", req.UserId, "token", req.GetPaginationToken())

	ctx, cancel, err := s.begin(ctx, "GetMatches", req)
	if err != nil {
		return nil, err
	}
	defer cancel()

	matches, next, err := s.engine.GetMatches(ctx, req.UserId, req.PaginationToken, s.limit(req.Limit))
	if err != nil {
		return nil, s.fail("GetMatches", err)
	}

	resp := &pb.GetMatchesResponse{
		Matches:             make([]*pb.MatchSummary, 0, len(matches)),
		NextPaginationToken: next,
	}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, toPBSummary(m))
	}

	s.appCtx.Logger.Debug("GetMatches result", "count", len(resp.Matches), "next_token", resp.GetNextPaginationToken())
	return resp, nil
}

// ProposeDeal opens a deal inside a match. The response carries the value
// summary of both sides.
func (s *Service) ProposeDeal(ctx context.Context, req *pb.ProposeDealRequest) (*pb.DealResponse, error) {
	s.appCtx.Logger.Debug("ProposeDeal called", "user", req.UserId, "match", req.MatchId,
		"offer_items", len(req.Offer), "request_items", len(req.Request))

	ctx, cancel, err := s.begin(ctx, "ProposeDeal", req)
	if err != nil {
		return nil, err
	}
	defer cancel()

	d, err := s.engine.Propose(ctx, req.UserId, engine.Proposal{
		MatchID:   req.MatchId,
		Offer:     fromPBItems(req.Offer),
		Request:   fromPBItems(req.Request),
		CashTopUp: req.CashTopUp,
		Note:      req.Note,
	})
	if err != nil {
		return nil, s.fail("ProposeDeal", err)
	}
	return &pb.DealResponse{Deal: toPBDeal(*d)}, nil
}

// UpdateDealStatus moves a deal along PROPOSED -> ACCEPTED/REJECTED/CANCELLED,
// ACCEPTED -> COMPLETED.
func (s *Service) UpdateDealStatus(ctx context.Context, req *pb.UpdateDealStatusRequest) (*pb.DealResponse, error) {
	s.appCtx.Logger.Debug("UpdateDealStatus called", "user", req.UserId, "deal", req.DealId, "status", req.Status)

	ctx, cancel, err := s.begin(ctx, "UpdateDealStatus", req)
	if err != nil {
		return nil, err
	}
	defer cancel()

	d, err := s.engine.Transition(ctx, req.UserId, req.DealId, engine.DealStatus(req.Status))
	if err != nil {
		return nil, s.fail("UpdateDealStatus", err)
	}
	return &pb.DealResponse{Deal: toPBDeal(*d)}, nil
}

func (s *Service) ListDeals(ctx context.Context, req *pb.ListDealsRequest) (*pb.ListDealsResponse, error) {
	ctx, cancel, err := s.begin(ctx, "ListDeals", req)
	if err != nil {
		return nil, err
	}
	defer cancel()

	deals, err := s.engine.ListDeals(ctx, req.UserId, req.MatchId)
	if err != nil {
		return nil, s.fail("ListDeals", err)
	}
	return &pb.ListDealsResponse{Deals: toPBDeals(deals)}, nil
}

// ValueSummary compares two declared totals without touching storage.
func (s *Service) ValueSummary(ctx context.Context, req *pb.ValueSummaryRequest) (*pb.ValueSummary, error) {
	_, cancel, err := s.begin(ctx, "ValueSummary", req)
	if err != nil {
		return nil, err
	}
	defer cancel()
	return toPBValueSummary(engine.ValueSummary(req.OfferTotal, req.RequestTotal)), nil
}

func (s *Service) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	s.appCtx.Logger.Debug("SendMessage called", "user", req.UserId, "match", req.MatchId)

	ctx, cancel, err := s.begin(ctx, "SendMessage", req)
	if err != nil {
		return nil, err
	}
	defer cancel()

	msg, err := s.engine.SendMessage(ctx, req.UserId, req.MatchId, req.Text)
	if err != nil {
		return nil, s.fail("SendMessage", err)
	}
	return &pb.SendMessageResponse{Message: toPBMessage(msg)}, nil
}

func (s *Service) MarkRead(ctx context.Context, req *pb.MatchRequest) (*pb.MarkReadResponse, error) {
	ctx, cancel, err := s.begin(ctx, "MarkRead", req)
	if err != nil {
		return nil, err
	}
	defer cancel()

	if err := s.engine.MarkRead(ctx, req.UserId, req.MatchId); err != nil {
		return nil, s.fail("MarkRead", err)
	}
	return &pb.MarkReadResponse{}, nil
}

// ObserveMatch streams match snapshots until the client goes away. The
// request timeout does not apply.
func (s *Service) ObserveMatch(req *pb.MatchRequest, stream grpc.ServerStreamingServer[pb.MatchSnapshot]) error {
	s.appCtx.Logger.Debug("ObserveMatch called", "user", req.UserId, "match", req.MatchId)

	if err := s.validate.Struct(req); err != nil {
		return svcErr.InvalidArgument(err.Error())
	}

	ctx := stream.Context()
	snaps, err := s.engine.Observe(ctx, req.UserId, req.MatchId)
	if err != nil {
		return s.fail("ObserveMatch", err)
	}
	for snap := range snaps {
		if err := stream.Send(toPBSnapshot(snap)); err != nil {
			return err
		}
	}
	s.appCtx.Logger.Debug("ObserveMatch ended", "user", req.UserId, "match", req.MatchId)
	return nil
}

// CountLikesReceived returns how many users liked the caller's listings.
// Served from Redis when warm.
func (s *Service) CountLikesReceived(ctx context.Context, req *pb.CountLikesReceivedRequest) (*pb.CountLikesReceivedResponse, error) {
	ctx, cancel, err := s.begin(ctx, "CountLikesReceived", req)
	if err != nil {
		return nil, err
	}
	defer cancel()

	n, err := s.engine.CountLikesReceived(ctx, req.UserId)
	if err != nil {
		return nil, s.fail("CountLikesReceived", err)
	}
	return &pb.CountLikesReceivedResponse{Count: uint64(n)}, nil
}

// ListLikers returns who liked which of the caller's listings, newest first.
func (s *Service) ListLikers(ctx context.Context, req *pb.ListLikersRequest) (*pb.ListLikersResponse, error) {
	ctx, cancel, err := s.begin(ctx, "ListLikers", req)
	if err != nil {
		return nil, err
	}
	defer cancel()

	swipes, next, err := s.engine.ListLikers(ctx, req.UserId, req.PaginationToken, s.pageSize)
	if err != nil {
		return nil, s.fail("ListLikers", err)
	}

	resp := &pb.ListLikersResponse{
		Likers:              make([]*pb.Liker, 0, len(swipes)),
		NextPaginationToken: next,
	}
	for _, sw := range swipes {
		resp.Likers = append(resp.Likers, &pb.Liker{
			UserId:        sw.FromUserID,
			ListingId:     sw.ListingID,
			UnixTimestamp: sw.UpdatedAt.UnixMilli(),
		})
	}
	return resp, nil
}
