package engine

import (
	"context"

	svcErr "github.com/oggyb/barter-match/internal/errors"
	"github.com/oggyb/barter-match/internal/metrics"
)

// Discover returns listings userID may swipe on, most relevant to
// interestTags first. kind narrows the candidates when non-empty.
func (e *Engine) Discover(ctx context.Context, userID string, interestTags []string, kind ListingKind, limit int) ([]Listing, error) {
	if userID == "" {
		return nil, svcErr.Validation("user id is required")
	}
	if limit <= 0 || limit > e.discoverLimit {
		limit = e.discoverLimit
	}

	now := e.now()
	candidates, err := e.listings.Query(ctx, ListingFilter{
		ExcludeOwner:  userID,
		ExcludeHidden: true,
		ExcludeSold:   true,
		ActiveAt:      &now,
		Kind:          kind,
		Limit:         limit,
	})
	if err != nil {
		return nil, err
	}

	ranked := Rank(userID, interestTags, candidates, now)
	metrics.DiscoverResults.Observe(float64(len(ranked)))
	e.log.Debug("discover", "user", userID, "tags", interestTags, "candidates", len(candidates), "returned", len(ranked))
	return ranked, nil
}
