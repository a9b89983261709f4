package engine

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	svcErr "github.com/oggyb/barter-match/internal/errors"
)

// enrichConcurrency bounds the per-match lookups of one Enrich call.
const enrichConcurrency = 8

// ListMatches pages through userID's matches, newest first. The order is
// stable for a given store snapshot.
func (e *Engine) ListMatches(ctx context.Context, userID string, pageToken *string, limit int) ([]Match, *string, error) {
	if userID == "" {
		return nil, nil, svcErr.Validation("user id is required")
	}
	if limit <= 0 {
		return nil, nil, svcErr.Validation("limit must be positive, got %d", limit)
	}
	return e.matches.ListByUser(ctx, userID, pageToken, limit)
}

// Enrich attaches the last message, viewer's unread count and the
// counterpart profile to every match. Output order follows input order.
func (e *Engine) Enrich(ctx context.Context, viewer string, matches []Match) ([]EnrichedMatch, error) {
	out := make([]EnrichedMatch, len(matches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, m := range matches {
		g.Go(func() error {
			em := EnrichedMatch{Match: m}

			last, err := e.chat.LastMessage(gctx, m.ID)
			if err != nil {
				return err
			}
			em.LastMessage = last

			if em.UnreadCount, err = e.chat.UnreadCount(gctx, m.ID, viewer); err != nil {
				return err
			}

			if e.users != nil {
				profile, err := e.users.GetProfile(gctx, m.Counterpart(viewer))
				switch {
				case err == nil:
					em.Counterpart = profile
				case errors.Is(err, svcErr.ErrNotFound):
					// profile is optional
				default:
					return err
				}
			}

			out[i] = em
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMatches lists and enriches userID's matches.
func (e *Engine) GetMatches(ctx context.Context, userID string, pageToken *string, limit int) ([]EnrichedMatch, *string, error) {
	matches, next, err := e.ListMatches(ctx, userID, pageToken, limit)
	if err != nil {
		return nil, nil, err
	}
	enriched, err := e.Enrich(ctx, userID, matches)
	if err != nil {
		return nil, nil, err
	}
	return enriched, next, nil
}

// GetMatch loads a match on behalf of one of its participants.
func (e *Engine) GetMatch(ctx context.Context, actor, matchID string) (*Match, error) {
	if matchID == "" {
		return nil, svcErr.Validation("match id is required")
	}
	m, err := e.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, svcErr.NotFound("match", matchID)
	}
	if !m.HasParticipant(actor) {
		return nil, svcErr.Authorization("user %q is not part of match %q", actor, matchID)
	}
	return m, nil
}

// SendMessage appends actor's text to the match thread.
func (e *Engine) SendMessage(ctx context.Context, actor, matchID, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, svcErr.Validation("message text is required")
	}
	if _, err := e.GetMatch(ctx, actor, matchID); err != nil {
		return nil, err
	}
	msg, err := e.chat.AppendMessage(ctx, matchID, actor, text)
	if err != nil {
		return nil, err
	}
	e.touch(ctx, matchID)
	return msg, nil
}

// MarkRead moves actor's read marker to the newest message of the thread.
func (e *Engine) MarkRead(ctx context.Context, actor, matchID string) error {
	if _, err := e.GetMatch(ctx, actor, matchID); err != nil {
		return err
	}
	if err := e.chat.MarkRead(ctx, matchID, actor); err != nil {
		return err
	}
	e.touch(ctx, matchID)
	return nil
}

// Snapshot reads the current state of a match thread as seen by actor.
func (e *Engine) Snapshot(ctx context.Context, actor, matchID string) (*MatchSnapshot, error) {
	m, err := e.GetMatch(ctx, actor, matchID)
	if err != nil {
		return nil, err
	}
	snap := &MatchSnapshot{Match: *m}
	if snap.LastMessage, err = e.chat.LastMessage(ctx, matchID); err != nil {
		return nil, err
	}
	if snap.MessageCount, err = e.chat.MessageCount(ctx, matchID); err != nil {
		return nil, err
	}
	if snap.UnreadCount, err = e.chat.UnreadCount(ctx, matchID, actor); err != nil {
		return nil, err
	}
	if snap.Deals, err = e.deals.ListByMatch(ctx, matchID); err != nil {
		return nil, err
	}
	return snap, nil
}

// Observe streams snapshots of a match: one right away, then one after
// each change-feed signal. At most one snapshot is pending; a newer one
// replaces it. The channel closes when ctx ends.
func (e *Engine) Observe(ctx context.Context, actor, matchID string) (<-chan MatchSnapshot, error) {
	if e.feed == nil {
		return nil, svcErr.StoreUnavailable("observe", errors.New("no change feed configured"))
	}
	if _, err := e.GetMatch(ctx, actor, matchID); err != nil {
		return nil, err
	}
	// Subscribe before the first read so a change landing in between
	// still produces a signal.
	signals, closeSub, err := e.feed.Subscribe(ctx, matchID)
	if err != nil {
		return nil, err
	}
	first, err := e.Snapshot(ctx, actor, matchID)
	if err != nil {
		closeSub()
		return nil, err
	}

	out := make(chan MatchSnapshot, 1)
	out <- *first

	go func() {
		defer close(out)
		defer closeSub()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
				snap, err := e.Snapshot(ctx, actor, matchID)
				if err != nil {
					if ctx.Err() == nil {
						e.log.Warn("observe snapshot failed", "match", matchID, "err", err)
					}
					continue
				}
				offerLatest(out, *snap)
			}
		}
	}()
	return out, nil
}

// offerLatest replaces an undelivered snapshot with a newer one.
func offerLatest(ch chan MatchSnapshot, snap MatchSnapshot) {
	for {
		select {
		case ch <- snap:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
