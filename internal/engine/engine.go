// Package engine implements the matching and negotiation rules of the
// barter marketplace: discovery ranking, the swipe ledger, the match
// registry and the deal state machine. Storage, notifications and the
// change feed are injected through the interfaces in store.go.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/oggyb/barter-match/internal/metrics"
)

const defaultGreeting = "It's a match! Say hi and start talking about a trade."

// Deps wires the engine to its collaborators. Notifier, Feed, Likes and
// Users are optional.
type Deps struct {
	Listings ListingStore
	Swipes   SwipeStore
	Matches  MatchStore
	Chat     ChatStore
	Deals    DealStore
	Users    UserDirectory
	Notifier Notifier
	Feed     ChangeFeed
	Likes    LikeCountCache
	Logger   *slog.Logger

	Greeting      string
	DiscoverLimit int
	// Now defaults to time.Now.
	Now func() time.Time
	// NewID defaults to random UUIDs.
	NewID func() string
}

type Engine struct {
	listings ListingStore
	swipes   SwipeStore
	matches  MatchStore
	chat     ChatStore
	deals    DealStore
	users    UserDirectory
	notifier Notifier
	feed     ChangeFeed
	likes    LikeCountCache
	log      *slog.Logger

	greeting      string
	discoverLimit int
	now           func() time.Time
	newID         func() string

	pairLocks   *keyedMutex
	dealLocks   *keyedMutex
	likeFlights singleflight.Group
}

func New(d Deps) *Engine {
	e := &Engine{
		listings:      d.Listings,
		swipes:        d.Swipes,
		matches:       d.Matches,
		chat:          d.Chat,
		deals:         d.Deals,
		users:         d.Users,
		notifier:      d.Notifier,
		feed:          d.Feed,
		likes:         d.Likes,
		log:           d.Logger,
		greeting:      d.Greeting,
		discoverLimit: d.DiscoverLimit,
		now:           d.Now,
		newID:         d.NewID,
		pairLocks:     newKeyedMutex(),
		dealLocks:     newKeyedMutex(),
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.greeting == "" {
		e.greeting = defaultGreeting
	}
	if e.discoverLimit <= 0 {
		e.discoverLimit = 100
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.newID == nil {
		e.newID = func() string { return uuid.NewString() }
	}
	return e
}

// notify hands an event to the emitter. Failures never reach the caller.
func (e *Engine) notify(ctx context.Context, recipient string, kind NotificationKind, payload map[string]any) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.Emit(ctx, recipient, kind, payload); err != nil {
		metrics.NotificationsTotal.WithLabelValues(string(kind), metrics.OutcomeError).Inc()
		e.log.Warn("notification failed", "recipient", recipient, "kind", kind, "err", err)
		return
	}
	metrics.NotificationsTotal.WithLabelValues(string(kind), metrics.OutcomeOK).Inc()
}

// touch signals observers of matchID. Failures are logged only.
func (e *Engine) touch(ctx context.Context, matchID string) {
	if e.feed == nil {
		return
	}
	if err := e.feed.Publish(ctx, matchID); err != nil {
		e.log.Warn("change feed publish failed", "match", matchID, "err", err)
	}
}
