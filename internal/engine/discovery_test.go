package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barter-match/internal/engine"
	svcErr "github.com/oggyb/barter-match/internal/errors"
)

func TestDiscover_FiltersAndRanks(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(24 * time.Hour)

	h.seedListing(t, "own", "me", base.Add(6*time.Minute), "tech")
	h.seedListing(t, "plain", "u1", base.Add(5*time.Minute))
	h.seedListing(t, "tech", "u2", base.Add(4*time.Minute), "Tech")
	h.seedListing(t, "both", "u3", base.Add(3*time.Minute), "tech", "sport")

	for _, l := range []engine.Listing{
		{ID: "hidden", OwnerID: "u1", Kind: engine.KindGoods, Title: "hidden", Tags: []string{"tech"}, Hidden: true, Availability: engine.Available, CreatedAt: base},
		{ID: "expired", OwnerID: "u1", Kind: engine.KindGoods, Title: "expired", ValidUntil: &past, Availability: engine.Available, CreatedAt: base},
		{ID: "sold", OwnerID: "u1", Kind: engine.KindGoods, Title: "sold", Availability: engine.Sold, CreatedAt: base},
		{ID: "service", OwnerID: "u4", Kind: engine.KindServices, Title: "lessons", ValidUntil: &future, Availability: engine.Reserved, CreatedAt: base.Add(time.Minute)},
	} {
		require.NoError(t, h.Listings.Create(ctx, l))
	}

	got, err := h.Engine.Discover(ctx, "me", []string{"sport", "TECH"}, "", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"both", "tech", "plain", "service"}, listingIDs(got))

	// no interests keeps newest first
	got, err = h.Engine.Discover(ctx, "me", nil, "", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"plain", "tech", "both", "service"}, listingIDs(got))

	got, err = h.Engine.Discover(ctx, "me", nil, engine.KindServices, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"service"}, listingIDs(got))

	got, err = h.Engine.Discover(ctx, "me", nil, "", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDiscover_RequiresUser(t *testing.T) {
	h := newHarness(t)
	_, err := h.Engine.Discover(context.Background(), "", nil, "", 10)
	assert.ErrorIs(t, err, svcErr.ErrValidation)
}

func listingIDs(ls []engine.Listing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}
