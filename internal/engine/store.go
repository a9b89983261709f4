package engine

import (
	"context"
	"time"
)

// ListingFilter narrows ListingStore.Query. Zero values disable a clause.
type ListingFilter struct {
	ExcludeOwner  string
	ExcludeHidden bool
	ExcludeSold   bool
	// ActiveAt drops listings whose ValidUntil is before it.
	ActiveAt *time.Time
	Kind     ListingKind
	Limit    int
}

type ListingStore interface {
	GetByID(ctx context.Context, id string) (*Listing, error)
	Query(ctx context.Context, filter ListingFilter) ([]Listing, error)
}

type SwipeStore interface {
	// Upsert keeps one row per (FromUserID, ListingID); the action is overwritten.
	Upsert(ctx context.Context, s Swipe) error
	// HasLikedListingOf reports whether actor has a LIKE on any listing owned by owner.
	HasLikedListingOf(ctx context.Context, actorID, ownerID string) (bool, error)
	CountLikesReceived(ctx context.Context, ownerID string) (int64, error)
	ListLikers(ctx context.Context, ownerID string, pageToken *string, limit int) ([]Swipe, *string, error)
}

type MatchStore interface {
	// CreateIfAbsent writes the match and its greeting atomically, unless the
	// pair already has a match, in which case that one is returned with created=false.
	CreateIfAbsent(ctx context.Context, m Match, greeting string) (match *Match, created bool, err error)
	GetByID(ctx context.Context, id string) (*Match, error)
	ListByUser(ctx context.Context, userID string, pageToken *string, limit int) ([]Match, *string, error)
}

type ChatStore interface {
	AppendMessage(ctx context.Context, matchID, fromUser, text string) (*Message, error)
	LastMessage(ctx context.Context, matchID string) (*Message, error)
	MessageCount(ctx context.Context, matchID string) (int64, error)
	UnreadCount(ctx context.Context, matchID, userID string) (int64, error)
	MarkRead(ctx context.Context, matchID, userID string) error
}

type DealStore interface {
	// Create writes the deal and all of its items in one transaction.
	Create(ctx context.Context, d Deal) error
	GetByID(ctx context.Context, id string) (*Deal, error)
	ListByMatch(ctx context.Context, matchID string) ([]Deal, error)
	// CompareAndSetStatus applies to only if the stored status is still from.
	CompareAndSetStatus(ctx context.Context, id string, from, to DealStatus) (bool, error)
}

type UserDirectory interface {
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)
}

// Notifier is fire-and-forget from the engine's point of view: errors are
// logged, never propagated.
type Notifier interface {
	Emit(ctx context.Context, recipientID string, kind NotificationKind, payload map[string]any) error
}

// ChangeFeed signals that something under a match changed.
type ChangeFeed interface {
	Publish(ctx context.Context, matchID string) error
	Subscribe(ctx context.Context, matchID string) (<-chan struct{}, func(), error)
}

// LikeCountCache fronts SwipeStore.CountLikesReceived. Every
// invalidation bumps a per-user version; GetLikeCount reports the current
// one and SetLikeCount drops a fill whose version is no longer current.
type LikeCountCache interface {
	GetLikeCount(ctx context.Context, userID string) (count, version int64, ok bool, err error)
	SetLikeCount(ctx context.Context, userID string, count, version int64) (stored bool, err error)
	InvalidateLikeCount(ctx context.Context, userID string) error
}
