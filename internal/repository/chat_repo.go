package repository

import (
	"context"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/barter-match/internal/db"
	"github.com/oggyb/barter-match/internal/engine"
)

// ChatRepository stores match threads and per-user read markers.
type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(database *gorm.DB) *ChatRepository {
	return &ChatRepository{db: database}
}

func (r *ChatRepository) AppendMessage(ctx context.Context, matchID, fromUser, text string) (*engine.Message, error) {
	row := db.Message{MatchID: matchID, SenderID: fromUser, Text: text}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, storeErr("append message", err)
	}
	m := toMessage(row)
	return &m, nil
}

// LastMessage returns nil for an empty thread.
func (r *ChatRepository) LastMessage(ctx context.Context, matchID string) (*engine.Message, error) {
	var rows []db.Message
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, storeErr("last message", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	m := toMessage(rows[0])
	return &m, nil
}

func (r *ChatRepository) MessageCount(ctx context.Context, matchID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db.Message{}).Where("match_id = ?", matchID).Count(&count).Error
	if err != nil {
		return 0, storeErr("count messages", err)
	}
	return count, nil
}

// UnreadCount counts messages after the user's read marker that the user
// did not write. System messages count for both participants.
func (r *ChatRepository) UnreadCount(ctx context.Context, matchID, userID string) (int64, error) {
	lastRead, err := r.lastRead(ctx, matchID, userID)
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.db.WithContext(ctx).
		Model(&db.Message{}).
		Where("match_id = ? AND id > ? AND sender_id <> ?", matchID, lastRead, userID).
		Count(&count).Error
	if err != nil {
		return 0, storeErr("count unread", err)
	}
	return count, nil
}

// MarkRead moves the user's marker to the newest message in the thread.
func (r *ChatRepository) MarkRead(ctx context.Context, matchID, userID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var newest uint64
		if err := tx.Model(&db.Message{}).
			Where("match_id = ?", matchID).
			Select("COALESCE(MAX(id), 0)").
			Scan(&newest).Error; err != nil {
			return err
		}
		marker := db.ReadMarker{MatchID: matchID, UserID: userID, LastReadMessageID: newest}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "match_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_read_message_id", "updated_at"}),
		}).Create(&marker).Error
	})
	return storeErr("mark read", err)
}

func (r *ChatRepository) lastRead(ctx context.Context, matchID, userID string) (uint64, error) {
	var markers []db.ReadMarker
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND user_id = ?", matchID, userID).
		Limit(1).
		Find(&markers).Error
	if err != nil {
		return 0, storeErr("read marker", err)
	}
	if len(markers) == 0 {
		return 0, nil
	}
	return markers[0].LastReadMessageID, nil
}

func toMessage(row db.Message) engine.Message {
	return engine.Message{
		ID:        strconv.FormatUint(row.ID, 10),
		MatchID:   row.MatchID,
		SenderID:  row.SenderID,
		Text:      row.Text,
		CreatedAt: row.CreatedAt,
	}
}
