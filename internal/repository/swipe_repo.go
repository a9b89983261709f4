package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/barter-match/internal/db"
	"github.com/oggyb/barter-match/internal/engine"
)

// SwipeRepository provides data access methods for the Swipe model.
// It encapsulates all queries related to likes/passes on listings.
type SwipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository creates a new repository bound to the given DB connection.
func NewSwipeRepository(database *gorm.DB) *SwipeRepository {
	return &SwipeRepository{db: database}
}

// Upsert inserts or updates a swipe made by a user on a listing.
//
// Behavior:
//   - If (from_user_id, listing_id) exists → liked and updated_at are overwritten.
//   - If it doesn't exist → a new row is inserted.
//   - Composite PK ensures overwrite guarantee, no history is kept.
//
// Example:
//
//	repo.Upsert(ctx, engine.Swipe{FromUserID: "u1", ListingID: "l1", OwnerID: "me", Action: engine.Like})
func (r *SwipeRepository) Upsert(ctx context.Context, s engine.Swipe) error {
	row := db.Swipe{
		FromUserID: s.FromUserID,
		ListingID:  s.ListingID,
		OwnerID:    s.OwnerID,
		Liked:      s.Action == engine.Like,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "from_user_id"}, {Name: "listing_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
		}).
		Create(&row).Error
	return storeErr("upsert swipe", err)
}

// HasLikedListingOf checks whether actor currently likes any listing owned by owner.
//
// Example:
//
//	repo.HasLikedListingOf(ctx, "u1", "me") // -> true if u1 liked one of me's listings
func (r *SwipeRepository) HasLikedListingOf(ctx context.Context, actorID, ownerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Swipe{}).
		Where("from_user_id = ? AND owner_id = ? AND liked = ?", actorID, ownerID, true).
		Count(&count).Error
	if err != nil {
		return false, storeErr("check mutual like", err)
	}
	return count > 0, nil
}

// CountLikesReceived returns how many LIKE swipes point at owner's listings.
// Used in conjunction with Redis cache (DB is fallback).
func (r *SwipeRepository) CountLikesReceived(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Swipe{}).
		Where("owner_id = ? AND liked = ?", ownerID, true).
		Count(&count).Error
	if err != nil {
		return 0, storeErr("count likes", err)
	}
	return count, nil
}

// ListLikers returns LIKE swipes on owner's listings.
//
// Behavior:
//   - Ordered by updated_at DESC, from_user_id DESC, listing_id DESC.
//   - Supports cursor-based pagination via pageToken; the cursor key is
//     "from_user_id|listing_id" of the last row.
func (r *SwipeRepository) ListLikers(ctx context.Context, ownerID string, pageToken *string, limit int) ([]engine.Swipe, *string, error) {
	cursor, err := decodeCursor(pageToken)
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Table("swipes s").
		Where("s.owner_id = ? AND s.liked = ?", ownerID, true).
		Order("s.updated_at DESC, s.from_user_id DESC, s.listing_id DESC").
		Limit(limit + 1)

	// apply cursor
	if !cursor.Empty() {
		ts := time.UnixMilli(cursor.Unix).UTC()
		from, listing := splitPair(cursor.Key)
		query = query.Where(
			`(s.updated_at < ? OR (s.updated_at = ? AND (s.from_user_id < ? OR (s.from_user_id = ? AND s.listing_id < ?))))`,
			ts, ts, from, from, listing,
		)
	}

	var rows []db.Swipe
	if err := query.Find(&rows).Error; err != nil {
		return nil, nil, storeErr("list likers", err)
	}

	var next *string
	if len(rows) > limit {
		last := rows[limit-1]
		next = nextToken(last.FromUserID+"|"+last.ListingID, last.UpdatedAt)
		rows = rows[:limit]
	}

	out := make([]engine.Swipe, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSwipe(row))
	}
	return out, next, nil
}

func toSwipe(row db.Swipe) engine.Swipe {
	action := engine.Pass
	if row.Liked {
		action = engine.Like
	}
	return engine.Swipe{
		FromUserID: row.FromUserID,
		ListingID:  row.ListingID,
		OwnerID:    row.OwnerID,
		Action:     action,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func splitPair(key string) (string, string) {
	from, listing, _ := strings.Cut(key, "|")
	return from, listing
}
