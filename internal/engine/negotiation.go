package engine

import (
	"context"
	"math"
	"strings"

	svcErr "github.com/oggyb/barter-match/internal/errors"
	"github.com/oggyb/barter-match/internal/metrics"
)

// Proposal is the input of Propose. Items are copied into the deal and
// never change afterwards.
type Proposal struct {
	MatchID   string
	Offer     []DealItem
	Request   []DealItem
	CashTopUp float64
	Note      string
}

func (p Proposal) validate() error {
	if p.MatchID == "" {
		return svcErr.Validation("match id is required")
	}
	if len(p.Offer) == 0 && len(p.Request) == 0 {
		return svcErr.Validation("a deal needs at least one offered or requested item")
	}
	if !validAmount(p.CashTopUp) {
		return svcErr.Validation("cash top-up must be a finite amount >= 0, got %v", p.CashTopUp)
	}
	sides := []struct {
		name  string
		items []DealItem
	}{
		{"offer", p.Offer},
		{"request", p.Request},
	}
	for _, side := range sides {
		for i, it := range side.items {
			if strings.TrimSpace(it.Title) == "" {
				return svcErr.Validation("%s item %d has no title", side.name, i)
			}
			if it.EstimatedValue != nil && !validAmount(*it.EstimatedValue) {
				return svcErr.Validation("%s item %d has an invalid value %v", side.name, i, *it.EstimatedValue)
			}
		}
	}
	return nil
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Propose opens a new deal in PROPOSED on behalf of actor, who must take
// part in the match.
func (e *Engine) Propose(ctx context.Context, actor string, p Proposal) (*Deal, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	m, err := e.GetMatch(ctx, actor, p.MatchID)
	if err != nil {
		return nil, err
	}

	now := e.now()
	d := Deal{
		ID:             e.newID(),
		MatchID:        m.ID,
		ProposerUserID: actor,
		Offer:          e.copyItems(p.Offer),
		Request:        e.copyItems(p.Request),
		Status:         DealProposed,
		CashTopUp:      p.CashTopUp,
		Note:           strings.TrimSpace(p.Note),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := e.deals.Create(ctx, d); err != nil {
		return nil, err
	}

	metrics.DealsProposedTotal.Inc()
	e.log.Info("deal proposed", "deal", d.ID, "match", m.ID, "proposer", actor,
		"offer_items", len(d.Offer), "request_items", len(d.Request))
	e.notify(ctx, m.Counterpart(actor), NotifyDealUpdated, map[string]any{
		"dealId":  d.ID,
		"matchId": m.ID,
		"status":  string(d.Status),
	})
	e.touch(ctx, m.ID)
	return &d, nil
}

// Transition moves a deal to target.
//
// Behavior:
//   - Unknown deal → NotFound; actor outside the match or acting out of
//     role → Authorization.
//   - target must be reachable from the current status, otherwise
//     InvalidTransition.
//   - The write is a compare-and-swap on the stored status, serialized
//     per deal, so of two racing calls only one can win.
func (e *Engine) Transition(ctx context.Context, actor, dealID string, target DealStatus) (*Deal, error) {
	if dealID == "" {
		return nil, svcErr.Validation("deal id is required")
	}
	if !target.Valid() {
		return nil, svcErr.Validation("unknown deal status %q", target)
	}

	unlock := e.dealLocks.Lock(dealID)
	defer unlock()

	d, err := e.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	m, err := e.GetMatch(ctx, actor, d.MatchID)
	if err != nil {
		return nil, err
	}
	if !d.Status.CanTransition(target) {
		metrics.DealTransitionsTotal.WithLabelValues(string(target), metrics.OutcomeRejected).Inc()
		return nil, svcErr.InvalidTransition(string(d.Status), string(target))
	}
	if !mayTransition(*d, actor, target) {
		return nil, svcErr.Authorization("user %q may not move deal %q to %s", actor, dealID, target)
	}

	ok, err := e.deals.CompareAndSetStatus(ctx, dealID, d.Status, target)
	if err != nil {
		metrics.DealTransitionsTotal.WithLabelValues(string(target), metrics.OutcomeError).Inc()
		return nil, err
	}
	if !ok {
		// another process moved it first
		metrics.DealTransitionsTotal.WithLabelValues(string(target), metrics.OutcomeRejected).Inc()
		current, err := e.loadDeal(ctx, dealID)
		if err != nil {
			return nil, err
		}
		return nil, svcErr.InvalidTransition(string(current.Status), string(target))
	}
	metrics.DealTransitionsTotal.WithLabelValues(string(target), metrics.OutcomeOK).Inc()

	updated, err := e.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	e.log.Info("deal status changed", "deal", dealID, "from", d.Status, "to", target, "actor", actor)
	e.notify(ctx, m.Counterpart(actor), NotifyDealUpdated, map[string]any{
		"dealId":  dealID,
		"matchId": m.ID,
		"status":  string(target),
	})
	e.touch(ctx, m.ID)
	return updated, nil
}

// GetDeal loads a deal on behalf of a match participant.
func (e *Engine) GetDeal(ctx context.Context, actor, dealID string) (*Deal, error) {
	d, err := e.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if _, err := e.GetMatch(ctx, actor, d.MatchID); err != nil {
		return nil, err
	}
	return d, nil
}

// ListDeals returns every deal of a match, oldest first.
func (e *Engine) ListDeals(ctx context.Context, actor, matchID string) ([]Deal, error) {
	if _, err := e.GetMatch(ctx, actor, matchID); err != nil {
		return nil, err
	}
	return e.deals.ListByMatch(ctx, matchID)
}

func (e *Engine) loadDeal(ctx context.Context, id string) (*Deal, error) {
	d, err := e.deals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, svcErr.NotFound("deal", id)
	}
	return d, nil
}

func (e *Engine) copyItems(items []DealItem) []DealItem {
	out := make([]DealItem, len(items))
	for i, it := range items {
		it.ID = e.newID()
		it.Title = strings.TrimSpace(it.Title)
		if it.EstimatedValue != nil {
			v := *it.EstimatedValue
			it.EstimatedValue = &v
		}
		out[i] = it
	}
	return out
}
