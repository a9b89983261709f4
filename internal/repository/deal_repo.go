package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/barter-match/internal/db"
	"github.com/oggyb/barter-match/internal/engine"
	svcErr "github.com/oggyb/barter-match/internal/errors"
)

// DealRepository persists deals with their items. Items are written once
// with the deal; afterwards only the status column changes.
type DealRepository struct {
	db *gorm.DB
}

func NewDealRepository(database *gorm.DB) *DealRepository {
	return &DealRepository{db: database}
}

// Create writes the deal row and every item in a single transaction, so a
// canceled call leaves nothing behind.
func (r *DealRepository) Create(ctx context.Context, d engine.Deal) error {
	row := db.Deal{
		ID:             d.ID,
		MatchID:        d.MatchID,
		ProposerUserID: d.ProposerUserID,
		Status:         string(d.Status),
		CashTopUp:      d.CashTopUp,
		Note:           d.Note,
		CreatedAt:      d.CreatedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
	row.Items = append(itemRows(d.ID, db.SideOffer, d.Offer), itemRows(d.ID, db.SideRequest, d.Request)...)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	return storeErr("create deal", err)
}

func (r *DealRepository) GetByID(ctx context.Context, id string) (*engine.Deal, error) {
	var row db.Deal
	err := r.db.WithContext(ctx).
		Preload("Items", orderItems).
		Where("id = ?", id).
		Take(&row).Error
	if isNotFound(err) {
		return nil, svcErr.NotFound("deal", id)
	}
	if err != nil {
		return nil, storeErr("get deal", err)
	}
	d := toDeal(row)
	return &d, nil
}

// ListByMatch returns the match's deals oldest first.
func (r *DealRepository) ListByMatch(ctx context.Context, matchID string) ([]engine.Deal, error) {
	var rows []db.Deal
	err := r.db.WithContext(ctx).
		Preload("Items", orderItems).
		Where("match_id = ?", matchID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storeErr("list deals", err)
	}
	out := make([]engine.Deal, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDeal(row))
	}
	return out, nil
}

// CompareAndSetStatus updates the status only when it still equals from.
// It reports false when another writer got there first.
func (r *DealRepository) CompareAndSetStatus(ctx context.Context, id string, from, to engine.DealStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Deal{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if res.Error != nil {
		return false, storeErr("update deal status", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func orderItems(tx *gorm.DB) *gorm.DB {
	return tx.Order("side ASC, position ASC")
}

func itemRows(dealID, side string, items []engine.DealItem) []db.DealItem {
	rows := make([]db.DealItem, 0, len(items))
	for i, it := range items {
		rows = append(rows, db.DealItem{
			ID:             it.ID,
			DealID:         dealID,
			Side:           side,
			Position:       i,
			Title:          it.Title,
			Kind:           string(it.Kind),
			EstimatedValue: it.EstimatedValue,
		})
	}
	return rows
}

func toDeal(row db.Deal) engine.Deal {
	d := engine.Deal{
		ID:             row.ID,
		MatchID:        row.MatchID,
		ProposerUserID: row.ProposerUserID,
		Status:         engine.DealStatus(row.Status),
		CashTopUp:      row.CashTopUp,
		Note:           row.Note,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	for _, it := range row.Items {
		item := engine.DealItem{
			ID:             it.ID,
			Title:          it.Title,
			Kind:           engine.ListingKind(it.Kind),
			EstimatedValue: it.EstimatedValue,
		}
		if it.Side == db.SideOffer {
			d.Offer = append(d.Offer, item)
		} else {
			d.Request = append(d.Request, item)
		}
	}
	return d
}
