package engine

import (
	"time"
)

type ListingKind string

const (
	KindGoods    ListingKind = "GOODS"
	KindServices ListingKind = "SERVICES"
	KindBoth     ListingKind = "BOTH"
)

type Availability string

const (
	Available Availability = "AVAILABLE"
	Reserved  Availability = "RESERVED"
	Sold      Availability = "SOLD"
)

type ListingStatus string

const (
	ListingActive  ListingStatus = "ACTIVE"
	ListingHidden  ListingStatus = "HIDDEN"
	ListingExpired ListingStatus = "EXPIRED"
)

// Listing is an offer to barter goods or services, owned by one user.
type Listing struct {
	ID             string
	OwnerID        string
	Kind           ListingKind
	Title          string
	Description    string
	Tags           []string
	EstimatedValue *float64
	CreatedAt      time.Time
	ValidUntil     *time.Time
	Hidden         bool
	Availability   Availability
}

// IsExpired reports whether ValidUntil is set and already passed at now.
func (l Listing) IsExpired(now time.Time) bool {
	return l.ValidUntil != nil && l.ValidUntil.Before(now)
}

// Status derives the visibility state. Hidden wins over expired.
func (l Listing) Status(now time.Time) ListingStatus {
	switch {
	case l.Hidden:
		return ListingHidden
	case l.IsExpired(now):
		return ListingExpired
	default:
		return ListingActive
	}
}

type SwipeAction string

const (
	Like SwipeAction = "LIKE"
	Pass SwipeAction = "PASS"
)

func (a SwipeAction) Valid() bool { return a == Like || a == Pass }

type Swipe struct {
	FromUserID string
	ListingID  string
	OwnerID    string
	Action     SwipeAction
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Match pairs two users. UserA completed the mutual like, UserB owns the
// listing that was liked last.
type Match struct {
	ID        string
	UserA     string
	UserB     string
	CreatedAt time.Time
}

func (m Match) HasParticipant(userID string) bool {
	return userID != "" && (m.UserA == userID || m.UserB == userID)
}

// Counterpart returns the other participant.
func (m Match) Counterpart(userID string) string {
	if m.UserA == userID {
		return m.UserB
	}
	return m.UserA
}

// PairKey is order independent: PairKey(a, b) == PairKey(b, a).
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// Message is a chat line in a match thread. An empty SenderID marks a
// system message.
type Message struct {
	ID        string
	MatchID   string
	SenderID  string
	Text      string
	CreatedAt time.Time
}

func (m Message) IsSystem() bool { return m.SenderID == "" }

type EnrichedMatch struct {
	Match
	LastMessage *Message
	UnreadCount int64
	Counterpart *UserProfile
}

type UserProfile struct {
	ID          string
	DisplayName string
	Location    string
	Rating      float64
	Balance     float64
}

type DealItem struct {
	ID             string
	Title          string
	Kind           ListingKind
	EstimatedValue *float64
}

type Deal struct {
	ID             string
	MatchID        string
	ProposerUserID string
	Offer          []DealItem
	Request        []DealItem
	Status         DealStatus
	CashTopUp      float64
	Note           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MatchSnapshot is what Observe delivers: the state of one match thread.
type MatchSnapshot struct {
	Match        Match
	LastMessage  *Message
	MessageCount int64
	UnreadCount  int64
	Deals        []Deal
}

type NotificationKind string

const (
	NotifyLikeReceived NotificationKind = "LIKE_RECEIVED"
	NotifyMatchCreated NotificationKind = "MATCH_CREATED"
	NotifyDealUpdated  NotificationKind = "DEAL_UPDATED"
)
