package engine

import (
	"context"

	svcErr "github.com/oggyb/barter-match/internal/errors"
	"github.com/oggyb/barter-match/internal/metrics"
)

// RecordSwipe stores fromUser's decision on a listing and returns the
// match when the like is mutual.
//
// Behavior:
//   - Unknown listing → NotFound; swiping your own listing → Validation.
//   - One swipe per (user, listing): a later call overwrites the action.
//   - PASS stops there and returns nil.
//   - LIKE always notifies the listing owner, then checks whether the owner
//     already liked one of fromUser's listings.
//   - A mutual like creates the match once; repeating it returns the
//     existing match without new greetings or notifications.
func (e *Engine) RecordSwipe(ctx context.Context, fromUser, listingID string, action SwipeAction) (*Match, error) {
	if fromUser == "" || listingID == "" {
		return nil, svcErr.Validation("user id and listing id are required")
	}
	if !action.Valid() {
		return nil, svcErr.Validation("unknown swipe action %q", action)
	}

	listing, err := e.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, svcErr.NotFound("listing", listingID)
	}
	owner := listing.OwnerID
	if owner == fromUser {
		return nil, svcErr.Validation("cannot swipe on your own listing")
	}

	// upsert + mutuality check + match creation are one unit per user pair
	unlock := e.pairLocks.Lock(PairKey(fromUser, owner))
	defer unlock()

	now := e.now()
	if err := e.swipes.Upsert(ctx, Swipe{
		FromUserID: fromUser,
		ListingID:  listingID,
		OwnerID:    owner,
		Action:     action,
		CreatedAt:  now,
		UpdatedAt:  now,
	}); err != nil {
		return nil, err
	}
	metrics.SwipesTotal.WithLabelValues(string(action)).Inc()
	e.invalidateLikeCount(ctx, owner)

	log := e.log.With("from", fromUser, "listing", listingID, "owner", owner, "action", action)
	if action == Pass {
		log.Debug("swipe recorded")
		return nil, nil
	}

	e.notify(ctx, owner, NotifyLikeReceived, map[string]any{
		"listingId":  listingID,
		"fromUserId": fromUser,
	})

	mutual, err := e.swipes.HasLikedListingOf(ctx, owner, fromUser)
	if err != nil {
		return nil, err
	}
	if !mutual {
		log.Debug("swipe recorded, no mutual like")
		return nil, nil
	}

	match, created, err := e.matches.CreateIfAbsent(ctx, Match{
		ID:        e.newID(),
		UserA:     fromUser,
		UserB:     owner,
		CreatedAt: now,
	}, e.greeting)
	if err != nil {
		return nil, err
	}
	if !created {
		log.Debug("mutual like on existing match", "match", match.ID)
		return match, nil
	}

	metrics.MatchesCreatedTotal.Inc()
	log.Info("match created", "match", match.ID)
	for _, u := range []string{match.UserA, match.UserB} {
		e.notify(ctx, u, NotifyMatchCreated, map[string]any{
			"matchId":        match.ID,
			"counterpartId":  match.Counterpart(u),
			"triggerListing": listingID,
		})
	}
	e.touch(ctx, match.ID)
	return match, nil
}

// CountLikesReceived returns how many LIKE swipes landed on userID's
// listings. Cache first; concurrent misses share one store query.
func (e *Engine) CountLikesReceived(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, svcErr.Validation("user id is required")
	}
	var version int64
	if e.likes != nil {
		n, v, ok, err := e.likes.GetLikeCount(ctx, userID)
		if err == nil && ok {
			return n, nil
		}
		version = v
	}

	v, err, _ := e.likeFlights.Do(userID, func() (any, error) {
		n, err := e.swipes.CountLikesReceived(ctx, userID)
		if err != nil {
			return int64(0), err
		}
		if e.likes != nil {
			stored, err := e.likes.SetLikeCount(ctx, userID, n, version)
			switch {
			case err != nil:
				e.log.Warn("like count cache set failed", "user", userID, "err", err)
			case !stored:
				e.log.Debug("like count fill skipped, invalidated meanwhile", "user", userID)
			}
		}
		return n, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// ListLikers pages through the LIKE swipes on userID's listings, newest first.
func (e *Engine) ListLikers(ctx context.Context, userID string, pageToken *string, limit int) ([]Swipe, *string, error) {
	if userID == "" {
		return nil, nil, svcErr.Validation("user id is required")
	}
	if limit <= 0 {
		return nil, nil, svcErr.Validation("limit must be positive, got %d", limit)
	}
	return e.swipes.ListLikers(ctx, userID, pageToken, limit)
}

func (e *Engine) invalidateLikeCount(ctx context.Context, userID string) {
	if e.likes == nil {
		return
	}
	if err := e.likes.InvalidateLikeCount(ctx, userID); err != nil {
		e.log.Warn("like count cache invalidate failed", "user", userID, "err", err)
	}
}
