package db

import (
	"time"
)

// User table. Profile fields are read by the engine; balance and rating
// are maintained elsewhere.
type User struct {
	ID           string  `gorm:"primaryKey;size:64"`
	DisplayName  string  `gorm:"size:128;not null"`
	Email        string  `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	Location     string  `gorm:"size:128"`
	Rating       float64 `gorm:"not null;default:0"`
	Balance      float64 `gorm:"not null;default:0"`
	Active       bool    `gorm:"default:true"`
	LastLoginAt  time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Listing is a barter offer.
//
// Indexes:
//   - idx_listing_discover(hidden, availability, created_at DESC)
//     Serves the discovery candidate query.
//   - idx_listing_owner(owner_id)
type Listing struct {
	ID             string     `gorm:"primaryKey;size:36"`
	OwnerID        string     `gorm:"size:64;not null;index:idx_listing_owner"`
	Kind           string     `gorm:"size:16;not null"`
	Title          string     `gorm:"size:200;not null"`
	Description    string     `gorm:"type:text"`
	Tags           []string   `gorm:"serializer:json;type:text"`
	EstimatedValue *float64   `gorm:"type:decimal(12,2)"`
	ValidUntil     *time.Time `gorm:"index"`
	Hidden         bool       `gorm:"not null;default:false;index:idx_listing_discover,priority:1"`
	Availability   string     `gorm:"size:16;not null;default:AVAILABLE;index:idx_listing_discover,priority:2"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index:idx_listing_discover,priority:3,sort:desc"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

// Swipe represents a user's like/pass decision on a listing.
//
// Composite PK: (FromUserID, ListingID)
//   - Ensures a single row per pair (overwrite guarantee).
//
// Indexes:
//   - idx_swipe_owner_liked_updated(owner_id, liked, updated_at DESC, from_user_id)
//     Serves "who liked my listings" lists and counts with pagination.
//   - idx_swipe_from_owner_liked(from_user_id, owner_id, liked)
//     O(1) lookup for the mutual like check.
//
// OwnerID duplicates the listing owner so the mutual check needs no join.
type Swipe struct {
	FromUserID string    `gorm:"primaryKey;size:64;index:idx_swipe_from_owner_liked,priority:1"`
	ListingID  string    `gorm:"primaryKey;size:36"`
	OwnerID    string    `gorm:"size:64;not null;index:idx_swipe_owner_liked_updated,priority:1;index:idx_swipe_from_owner_liked,priority:2"`
	Liked      bool      `gorm:"not null;index:idx_swipe_owner_liked_updated,priority:2;index:idx_swipe_from_owner_liked,priority:3"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;index:idx_swipe_owner_liked_updated,priority:3,sort:desc"`
}

// Match between two users. PairKey is the sorted "a|b" pair and is unique,
// which makes match creation idempotent across processes.
type Match struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserA     string    `gorm:"size:64;not null;index"`
	UserB     string    `gorm:"size:64;not null;index"`
	PairKey   string    `gorm:"size:130;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

// Message in a match thread. SenderID is empty for system messages.
type Message struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	MatchID   string    `gorm:"size:36;not null;index:idx_message_match_created,priority:1"`
	SenderID  string    `gorm:"size:64;not null;default:''"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_message_match_created,priority:2"`
}

// ReadMarker remembers the last message a user has read in a thread.
type ReadMarker struct {
	MatchID           string `gorm:"primaryKey;size:36"`
	UserID            string `gorm:"primaryKey;size:64"`
	LastReadMessageID uint64 `gorm:"not null;default:0"`
	UpdatedAt         time.Time
}

// Deal is a barter proposal inside a match. Status only moves through
// UPDATE ... WHERE status = ? so concurrent transitions cannot both win.
type Deal struct {
	ID             string     `gorm:"primaryKey;size:36"`
	MatchID        string     `gorm:"size:36;not null;index:idx_deal_match_created,priority:1"`
	ProposerUserID string     `gorm:"size:64;not null"`
	Status         string     `gorm:"size:16;not null;index"`
	CashTopUp      float64    `gorm:"type:decimal(12,2);not null;default:0"`
	Note           string     `gorm:"type:text"`
	Items          []DealItem `gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time  `gorm:"index:idx_deal_match_created,priority:2"`
	UpdatedAt      time.Time
}

const (
	SideOffer   = "OFFER"
	SideRequest = "REQUEST"
)

// DealItem belongs to exactly one side of one deal.
type DealItem struct {
	ID             string   `gorm:"primaryKey;size:36"`
	DealID         string   `gorm:"size:36;not null;index"`
	Side           string   `gorm:"size:8;not null"`
	Position       int      `gorm:"not null"`
	Title          string   `gorm:"size:200;not null"`
	Kind           string   `gorm:"size:16"`
	EstimatedValue *float64 `gorm:"type:decimal(12,2)"`
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&User{}, &Listing{}, &Swipe{}, &Match{}, &Message{},
		&ReadMarker{}, &Deal{}, &DealItem{},
	}
}
