package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/barter-match/internal/db"
	"github.com/oggyb/barter-match/internal/engine"
	svcErr "github.com/oggyb/barter-match/internal/errors"
)

// ListingRepository reads listings for discovery and swipes. Listing
// CRUD belongs to another service; Create exists for seeding and tests.
type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(database *gorm.DB) *ListingRepository {
	return &ListingRepository{db: database}
}

func (r *ListingRepository) Create(ctx context.Context, l engine.Listing) error {
	row := listingRow(l)
	return storeErr("create listing", r.db.WithContext(ctx).Create(&row).Error)
}

// GetByID returns NotFound for unknown ids.
func (r *ListingRepository) GetByID(ctx context.Context, id string) (*engine.Listing, error) {
	var row db.Listing
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if isNotFound(err) {
		return nil, svcErr.NotFound("listing", id)
	}
	if err != nil {
		return nil, storeErr("get listing", err)
	}
	l := toListing(row)
	return &l, nil
}

// Query returns candidates newest first, id as tie-breaker.
func (r *ListingRepository) Query(ctx context.Context, f engine.ListingFilter) ([]engine.Listing, error) {
	q := r.db.WithContext(ctx).Model(&db.Listing{})
	if f.ExcludeOwner != "" {
		q = q.Where("owner_id <> ?", f.ExcludeOwner)
	}
	if f.ExcludeHidden {
		q = q.Where("hidden = ?", false)
	}
	if f.ExcludeSold {
		q = q.Where("availability <> ?", string(engine.Sold))
	}
	if f.ActiveAt != nil {
		q = q.Where("(valid_until IS NULL OR valid_until >= ?)", f.ActiveAt.UTC())
	}
	if f.Kind != "" {
		q = q.Where("kind = ?", string(f.Kind))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var rows []db.Listing
	if err := q.Order("created_at DESC, id ASC").Find(&rows).Error; err != nil {
		return nil, storeErr("query listings", err)
	}
	out := make([]engine.Listing, 0, len(rows))
	for _, row := range rows {
		out = append(out, toListing(row))
	}
	return out, nil
}

func listingRow(l engine.Listing) db.Listing {
	if l.ValidUntil != nil {
		utc := l.ValidUntil.UTC()
		l.ValidUntil = &utc
	}
	return db.Listing{
		ID:             l.ID,
		OwnerID:        l.OwnerID,
		Kind:           string(l.Kind),
		Title:          l.Title,
		Description:    l.Description,
		Tags:           l.Tags,
		EstimatedValue: l.EstimatedValue,
		ValidUntil:     l.ValidUntil,
		Hidden:         l.Hidden,
		Availability:   string(l.Availability),
		CreatedAt:      l.CreatedAt,
	}
}

func toListing(row db.Listing) engine.Listing {
	return engine.Listing{
		ID:             row.ID,
		OwnerID:        row.OwnerID,
		Kind:           engine.ListingKind(row.Kind),
		Title:          row.Title,
		Description:    row.Description,
		Tags:           row.Tags,
		EstimatedValue: row.EstimatedValue,
		CreatedAt:      row.CreatedAt,
		ValidUntil:     row.ValidUntil,
		Hidden:         row.Hidden,
		Availability:   engine.Availability(row.Availability),
	}
}
