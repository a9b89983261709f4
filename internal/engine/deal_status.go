package engine

type DealStatus string

const (
	DealProposed  DealStatus = "PROPOSED"
	DealAccepted  DealStatus = "ACCEPTED"
	DealRejected  DealStatus = "REJECTED"
	DealCancelled DealStatus = "CANCELLED"
	DealCompleted DealStatus = "COMPLETED"
)

// dealTransitions is the whole state graph. Anything missing is illegal.
var dealTransitions = map[DealStatus][]DealStatus{
	DealProposed: {DealAccepted, DealRejected, DealCancelled},
	DealAccepted: {DealCompleted},
}

func (s DealStatus) Valid() bool {
	switch s {
	case DealProposed, DealAccepted, DealRejected, DealCancelled, DealCompleted:
		return true
	}
	return false
}

// CanTransition reports whether to is reachable from s in one step.
func (s DealStatus) CanTransition(to DealStatus) bool {
	for _, next := range dealTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// mayTransition enforces who is allowed to move a deal to the target:
// the counterparty answers a proposal, the proposer withdraws it, and
// either side can confirm completion.
func mayTransition(d Deal, actor string, to DealStatus) bool {
	switch to {
	case DealAccepted, DealRejected:
		return actor != d.ProposerUserID
	case DealCancelled:
		return actor == d.ProposerUserID
	default:
		return true
	}
}
