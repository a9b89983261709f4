package market

import (
	"time"

	"github.com/oggyb/barter-match/internal/engine"
	pb "github.com/oggyb/barter-match/internal/proto/market"
)

func toPBListing(l engine.Listing, now time.Time) *pb.Listing {
	out := &pb.Listing{
		Id:             l.ID,
		OwnerId:        l.OwnerID,
		Kind:           string(l.Kind),
		Title:          l.Title,
		Description:    l.Description,
		Tags:           l.Tags,
		EstimatedValue: l.EstimatedValue,
		Availability:   string(l.Availability),
		Status:         string(l.Status(now)),
		CreatedAt:      l.CreatedAt.UnixMilli(),
	}
	if l.ValidUntil != nil {
		ms := l.ValidUntil.UnixMilli()
		out.ValidUntil = &ms
	}
	return out
}

func toPBMatch(m *engine.Match) *pb.Match {
	if m == nil {
		return nil
	}
	return &pb.Match{
		Id:        m.ID,
		UserA:     m.UserA,
		UserB:     m.UserB,
		CreatedAt: m.CreatedAt.UnixMilli(),
	}
}

func toPBMessage(m *engine.Message) *pb.Message {
	if m == nil {
		return nil
	}
	return &pb.Message{
		Id:        m.ID,
		MatchId:   m.MatchID,
		SenderId:  m.SenderID,
		Text:      m.Text,
		System:    m.IsSystem(),
		CreatedAt: m.CreatedAt.UnixMilli(),
	}
}

func toPBSummary(em engine.EnrichedMatch) *pb.MatchSummary {
	out := &pb.MatchSummary{
		Match:       toPBMatch(&em.Match),
		LastMessage: toPBMessage(em.LastMessage),
		UnreadCount: em.UnreadCount,
	}
	if p := em.Counterpart; p != nil {
		out.Counterpart = &pb.Profile{
			Id:          p.ID,
			DisplayName: p.DisplayName,
			Location:    p.Location,
			Rating:      p.Rating,
		}
	}
	return out
}

func toPBValueSummary(s engine.DealValueSummary) *pb.ValueSummary {
	return &pb.ValueSummary{
		OfferTotal:     s.OfferTotal,
		RequestTotal:   s.RequestTotal,
		Difference:     s.Difference,
		SuggestedTopUp: s.SuggestedTopUp,
		TopUpSide:      string(s.TopUpSide),
		IsFair:         s.IsFair,
	}
}

func toPBItems(items []engine.DealItem) []*pb.DealItem {
	out := make([]*pb.DealItem, 0, len(items))
	for _, it := range items {
		out = append(out, &pb.DealItem{
			Id:             it.ID,
			Title:          it.Title,
			Kind:           string(it.Kind),
			EstimatedValue: it.EstimatedValue,
		})
	}
	return out
}

func toPBDeal(d engine.Deal) *pb.Deal {
	return &pb.Deal{
		Id:             d.ID,
		MatchId:        d.MatchID,
		ProposerUserId: d.ProposerUserID,
		Offer:          toPBItems(d.Offer),
		Request:        toPBItems(d.Request),
		Status:         string(d.Status),
		CashTopUp:      d.CashTopUp,
		Note:           d.Note,
		Summary:        toPBValueSummary(engine.Summarize(d)),
		CreatedAt:      d.CreatedAt.UnixMilli(),
		UpdatedAt:      d.UpdatedAt.UnixMilli(),
	}
}

func toPBDeals(deals []engine.Deal) []*pb.Deal {
	out := make([]*pb.Deal, 0, len(deals))
	for _, d := range deals {
		out = append(out, toPBDeal(d))
	}
	return out
}

func toPBSnapshot(s engine.MatchSnapshot) *pb.MatchSnapshot {
	return &pb.MatchSnapshot{
		Match:        toPBMatch(&s.Match),
		LastMessage:  toPBMessage(s.LastMessage),
		MessageCount: s.MessageCount,
		UnreadCount:  s.UnreadCount,
		Deals:        toPBDeals(s.Deals),
	}
}

func fromPBItems(items []*pb.DealItem) []engine.DealItem {
	out := make([]engine.DealItem, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		out = append(out, engine.DealItem{
			Title:          it.Title,
			Kind:           engine.ListingKind(it.Kind),
			EstimatedValue: it.EstimatedValue,
		})
	}
	return out
}
