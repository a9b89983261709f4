package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/barter-match/internal/db"
	"github.com/oggyb/barter-match/internal/engine"
	svcErr "github.com/oggyb/barter-match/internal/errors"
)

// MatchRepository owns the matches table and the greeting that opens
// every match thread.
type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// CreateIfAbsent inserts the match and its system greeting in one
// transaction. The unique pair_key index turns a concurrent or repeated
// insert into a no-op; the stored match is then returned with created=false.
func (r *MatchRepository) CreateIfAbsent(ctx context.Context, m engine.Match, greeting string) (*engine.Match, bool, error) {
	row := db.Match{
		ID:        m.ID,
		UserA:     m.UserA,
		UserB:     m.UserB,
		PairKey:   engine.PairKey(m.UserA, m.UserB),
		CreatedAt: m.CreatedAt.UTC().Truncate(time.Millisecond),
	}

	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pair_key"}},
			DoNothing: true,
		}).Create(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return tx.Where("pair_key = ?", row.PairKey).Take(&row).Error
		}
		created = true
		if greeting == "" {
			return nil
		}
		return tx.Create(&db.Message{MatchID: row.ID, Text: greeting}).Error
	})
	if err != nil {
		return nil, false, storeErr("create match", err)
	}

	out := toMatch(row)
	return &out, created, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (*engine.Match, error) {
	var row db.Match
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if isNotFound(err) {
		return nil, svcErr.NotFound("match", id)
	}
	if err != nil {
		return nil, storeErr("get match", err)
	}
	m := toMatch(row)
	return &m, nil
}

// ListByUser returns the user's matches ordered by created_at DESC, id DESC
// with cursor-based pagination.
func (r *MatchRepository) ListByUser(ctx context.Context, userID string, pageToken *string, limit int) ([]engine.Match, *string, error) {
	cursor, err := decodeCursor(pageToken)
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("(user_a = ? OR user_b = ?)", userID, userID).
		Order("created_at DESC, id DESC").
		Limit(limit + 1)

	if !cursor.Empty() {
		ts := time.UnixMilli(cursor.Unix).UTC()
		query = query.Where("(created_at < ? OR (created_at = ? AND id < ?))", ts, ts, cursor.Key)
	}

	var rows []db.Match
	if err := query.Find(&rows).Error; err != nil {
		return nil, nil, storeErr("list matches", err)
	}

	var next *string
	if len(rows) > limit {
		last := rows[limit-1]
		next = nextToken(last.ID, last.CreatedAt)
		rows = rows[:limit]
	}

	out := make([]engine.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, toMatch(row))
	}
	return out, next, nil
}

func toMatch(row db.Match) engine.Match {
	return engine.Match{
		ID:        row.ID,
		UserA:     row.UserA,
		UserB:     row.UserB,
		CreatedAt: row.CreatedAt,
	}
}
