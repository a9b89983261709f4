package engine_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barter-match/internal/db"
	"github.com/oggyb/barter-match/internal/engine"
	svcErr "github.com/oggyb/barter-match/internal/errors"
)

func proposal(matchID string) engine.Proposal {
	return engine.Proposal{
		MatchID:   matchID,
		Offer:     []engine.DealItem{{Title: "road bike", Kind: engine.KindGoods, EstimatedValue: ptr(100)}},
		Request:   []engine.DealItem{{Title: "guitar lessons", Kind: engine.KindServices, EstimatedValue: ptr(90)}},
		CashTopUp: 5,
		Note:      " weekend handover ",
	}
}

func TestPropose_StoresDealAndNotifies(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	m := h.match(t, "me", "u1")

	d, err := h.Engine.Propose(ctx, "me", proposal(m.ID))
	require.NoError(t, err)
	assert.Equal(t, engine.DealProposed, d.Status)
	assert.Equal(t, "me", d.ProposerUserID)
	assert.Equal(t, "weekend handover", d.Note)

	stored, err := h.Engine.GetDeal(ctx, "u1", d.ID)
	require.NoError(t, err)
	require.Len(t, stored.Offer, 1)
	require.Len(t, stored.Request, 1)
	assert.Equal(t, "road bike", stored.Offer[0].Title)
	assert.Equal(t, engine.KindServices, stored.Request[0].Kind)
	assert.InDelta(t, 5.0, stored.CashTopUp, 0.001)

	s := engine.Summarize(*stored)
	assert.True(t, s.IsFair)
	assert.InDelta(t, 10.0, s.Difference, 0.001)

	updates := h.Notifier.Of(engine.NotifyDealUpdated)
	require.Len(t, updates, 1)
	assert.Equal(t, "u1", updates[0].Recipient)

	deals, err := h.Engine.ListDeals(ctx, "u1", m.ID)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, d.ID, deals[0].ID)
}

func TestPropose_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	m := h.match(t, "me", "u1")

	empty := engine.Proposal{MatchID: m.ID}
	negative := proposal(m.ID)
	negative.CashTopUp = -1
	untitled := proposal(m.ID)
	untitled.Offer[0].Title = " "
	negValue := proposal(m.ID)
	negValue.Request[0].EstimatedValue = ptr(-3)
	nanCash := proposal(m.ID)
	nanCash.CashTopUp = math.NaN()
	infValue := proposal(m.ID)
	infValue.Offer[0].EstimatedValue = ptr(math.Inf(1))

	for name, p := range map[string]engine.Proposal{
		"no items":       empty,
		"negative cash":  negative,
		"untitled item":  untitled,
		"negative value": negValue,
		"NaN cash":       nanCash,
		"infinite value": infValue,
		"no match":       {Offer: proposal("").Offer},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := h.Engine.Propose(ctx, "me", p)
			assert.ErrorIs(t, err, svcErr.ErrValidation)
		})
	}

	// the offer side is checked first, every time
	bothBad := proposal(m.ID)
	bothBad.Offer[0].Title = ""
	bothBad.Request[0].Title = ""
	for i := 0; i < 20; i++ {
		_, err := h.Engine.Propose(ctx, "me", bothBad)
		require.ErrorIs(t, err, svcErr.ErrValidation)
		assert.Contains(t, err.Error(), "offer item 0")
	}

	_, err := h.Engine.Propose(ctx, "stranger", proposal(m.ID))
	assert.ErrorIs(t, err, svcErr.ErrAuthorization)

	_, err = h.Engine.Propose(ctx, "me", proposal("ghost"))
	assert.ErrorIs(t, err, svcErr.ErrNotFound)

	assert.EqualValues(t, 0, h.countRows(t, &db.Deal{}, ""))
}

func TestTransition_HappyPath(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	m := h.match(t, "me", "u1")

	d, err := h.Engine.Propose(ctx, "me", proposal(m.ID))
	require.NoError(t, err)

	d, err = h.Engine.Transition(ctx, "u1", d.ID, engine.DealAccepted)
	require.NoError(t, err)
	assert.Equal(t, engine.DealAccepted, d.Status)

	d, err = h.Engine.Transition(ctx, "me", d.ID, engine.DealCompleted)
	require.NoError(t, err)
	assert.Equal(t, engine.DealCompleted, d.Status)

	// terminal
	for _, to := range []engine.DealStatus{engine.DealProposed, engine.DealAccepted, engine.DealCancelled} {
		_, err = h.Engine.Transition(ctx, "me", d.ID, to)
		assert.ErrorIs(t, err, svcErr.ErrInvalidTransition, "COMPLETED -> %s", to)
	}

	// proposer informed of the acceptance, counterparty of the completion
	var recipients []string
	for _, s := range h.Notifier.Of(engine.NotifyDealUpdated) {
		recipients = append(recipients, s.Recipient)
	}
	assert.Equal(t, []string{"u1", "me", "u1"}, recipients)
}

func TestTransition_Rules(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	m := h.match(t, "me", "u1")

	d, err := h.Engine.Propose(ctx, "me", proposal(m.ID))
	require.NoError(t, err)

	_, err = h.Engine.Transition(ctx, "me", d.ID, engine.DealAccepted)
	assert.ErrorIs(t, err, svcErr.ErrAuthorization, "proposer cannot accept own deal")

	_, err = h.Engine.Transition(ctx, "u1", d.ID, engine.DealCancelled)
	assert.ErrorIs(t, err, svcErr.ErrAuthorization, "only the proposer withdraws")

	_, err = h.Engine.Transition(ctx, "stranger", d.ID, engine.DealRejected)
	assert.ErrorIs(t, err, svcErr.ErrAuthorization)

	_, err = h.Engine.Transition(ctx, "u1", d.ID, engine.DealCompleted)
	assert.ErrorIs(t, err, svcErr.ErrInvalidTransition, "PROPOSED cannot complete")

	_, err = h.Engine.Transition(ctx, "u1", d.ID, engine.DealStatus("LOST"))
	assert.ErrorIs(t, err, svcErr.ErrValidation)

	_, err = h.Engine.Transition(ctx, "u1", "ghost", engine.DealRejected)
	assert.ErrorIs(t, err, svcErr.ErrNotFound)

	rejected, err := h.Engine.Transition(ctx, "u1", d.ID, engine.DealRejected)
	require.NoError(t, err)
	assert.Equal(t, engine.DealRejected, rejected.Status)

	_, err = h.Engine.Transition(ctx, "me", d.ID, engine.DealCancelled)
	assert.ErrorIs(t, err, svcErr.ErrInvalidTransition)
}

func TestTransition_ConcurrentAcceptAndCancel(t *testing.T) {
	for i := 0; i < 5; i++ {
		t.Run(fmt.Sprintf("round-%d", i), func(t *testing.T) {
			h := newHarness(t)
			ctx := context.Background()
			m := h.match(t, "me", "u1")

			d, err := h.Engine.Propose(ctx, "me", proposal(m.ID))
			require.NoError(t, err)

			var (
				wg   sync.WaitGroup
				errs = make([]error, 2)
			)
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, errs[0] = h.Engine.Transition(ctx, "u1", d.ID, engine.DealAccepted)
			}()
			go func() {
				defer wg.Done()
				_, errs[1] = h.Engine.Transition(ctx, "me", d.ID, engine.DealCancelled)
			}()
			wg.Wait()

			var wins int
			for _, err := range errs {
				if err == nil {
					wins++
					continue
				}
				assert.True(t, errors.Is(err, svcErr.ErrInvalidTransition), "loser gets InvalidTransition, got %v", err)
			}
			assert.Equal(t, 1, wins)

			final, err := h.Engine.GetDeal(ctx, "me", d.ID)
			require.NoError(t, err)
			if errs[0] == nil {
				assert.Equal(t, engine.DealAccepted, final.Status)
			} else {
				assert.Equal(t, engine.DealCancelled, final.Status)
			}
		})
	}
}

func TestPropose_PersistsItems(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	m := h.match(t, "me", "u1")
	d, err := h.Engine.Propose(ctx, "me", proposal(m.ID))
	require.NoError(t, err)

	var row db.Deal
	require.NoError(t, h.DB.Where("id = ?", d.ID).Take(&row).Error)
	assert.Equal(t, string(engine.DealProposed), row.Status)
	assert.EqualValues(t, 2, h.countRows(t, &db.DealItem{}, "deal_id = ?", d.ID))
}
