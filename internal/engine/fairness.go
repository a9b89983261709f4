package engine

import "math"

// FairnessTolerance is the share of the combined declared value that the
// two sides may differ by and still count as fair.
const FairnessTolerance = 0.1

// DealSide names one side of a deal.
type DealSide string

const (
	SideOffer   DealSide = "OFFER"
	SideRequest DealSide = "REQUEST"
)

type DealValueSummary struct {
	OfferTotal   float64
	RequestTotal float64
	// Difference is OfferTotal - RequestTotal.
	Difference float64
	// SuggestedTopUp is the cash the lighter side would add to even out
	// the trade; TopUpSide says which side that is (empty when balanced).
	// When the offer is short this equals max(0, -Difference).
	SuggestedTopUp float64
	TopUpSide      DealSide
	IsFair         bool
}

// ValueSummary compares the declared value of both sides of a deal. The
// result is advisory: unfair deals can still be accepted.
func ValueSummary(offerTotal, requestTotal float64) DealValueSummary {
	diff := offerTotal - requestTotal
	s := DealValueSummary{
		OfferTotal:     offerTotal,
		RequestTotal:   requestTotal,
		Difference:     diff,
		SuggestedTopUp: math.Abs(diff),
		IsFair:         math.Abs(diff) <= FairnessTolerance*(offerTotal+requestTotal),
	}
	switch {
	case diff < 0:
		s.TopUpSide = SideOffer
	case diff > 0:
		s.TopUpSide = SideRequest
	}
	return s
}

// ItemsTotal sums declared values; items without one count as zero.
func ItemsTotal(items []DealItem) float64 {
	var total float64
	for _, it := range items {
		if it.EstimatedValue != nil {
			total += *it.EstimatedValue
		}
	}
	return total
}

// Summarize recomputes the value summary of a stored deal. The cash
// top-up is not folded in: it is reported next to the summary.
func Summarize(d Deal) DealValueSummary {
	return ValueSummary(ItemsTotal(d.Offer), ItemsTotal(d.Request))
}
