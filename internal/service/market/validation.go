package market

import (
	"github.com/go-playground/validator/v10"

	pb "github.com/oggyb/barter-match/internal/proto/market"
)

const (
	kindRule   = "omitempty,oneof=GOODS SERVICES BOTH"
	statusRule = "required,oneof=PROPOSED ACCEPTED REJECTED CANCELLED COMPLETED"
)

// requestRules maps each generated request message to the validator
// rules of its exported fields. Generated structs cannot carry
// `validate` tags, so the rules are registered per type.
var requestRules = []struct {
	msg   any
	rules map[string]string
}{
	{(*pb.SwipeRequest)(nil), map[string]string{
		"UserId":    "required",
		"ListingId": "required",
		"Action":    "required,oneof=LIKE PASS",
	}},
	{(*pb.DiscoverRequest)(nil), map[string]string{
		"UserId":       "required",
		"InterestTags": "max=50,dive,max=64",
		"Kind":         kindRule,
		"Limit":        "gte=0",
	}},
	{(*pb.GetMatchesRequest)(nil), map[string]string{
		"UserId": "required",
		"Limit":  "gte=0,lte=100",
	}},
	{(*pb.DealItem)(nil), map[string]string{
		"Title":          "required,max=200",
		"Kind":           kindRule,
		"EstimatedValue": "omitempty,gte=0",
	}},
	{(*pb.ProposeDealRequest)(nil), map[string]string{
		"UserId":    "required",
		"MatchId":   "required",
		"Offer":     "dive,required",
		"Request":   "dive,required",
		"CashTopUp": "gte=0",
		"Note":      "max=2000",
	}},
	{(*pb.UpdateDealStatusRequest)(nil), map[string]string{
		"UserId": "required",
		"DealId": "required",
		"Status": statusRule,
	}},
	{(*pb.ListDealsRequest)(nil), map[string]string{
		"UserId":  "required",
		"MatchId": "required",
	}},
	{(*pb.ValueSummaryRequest)(nil), map[string]string{
		"OfferTotal":   "gte=0",
		"RequestTotal": "gte=0",
	}},
	{(*pb.SendMessageRequest)(nil), map[string]string{
		"UserId":  "required",
		"MatchId": "required",
		"Text":    "required,max=4000",
	}},
	{(*pb.MatchRequest)(nil), map[string]string{
		"UserId":  "required",
		"MatchId": "required",
	}},
	{(*pb.CountLikesReceivedRequest)(nil), map[string]string{
		"UserId": "required",
	}},
	{(*pb.ListLikersRequest)(nil), map[string]string{
		"UserId": "required",
	}},
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	for _, r := range requestRules {
		v.RegisterStructValidationMapRules(r.rules, r.msg)
	}
	return v
}
