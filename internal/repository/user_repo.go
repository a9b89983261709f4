package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/barter-match/internal/db"
	"github.com/oggyb/barter-match/internal/engine"
	svcErr "github.com/oggyb/barter-match/internal/errors"
)

// UserRepository is the read-only user directory used for enrichment.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

func (r *UserRepository) GetProfile(ctx context.Context, userID string) (*engine.UserProfile, error) {
	var u db.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).Take(&u).Error
	if isNotFound(err) {
		return nil, svcErr.NotFound("user", userID)
	}
	if err != nil {
		return nil, storeErr("get profile", err)
	}
	return &engine.UserProfile{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Location:    u.Location,
		Rating:      u.Rating,
		Balance:     u.Balance,
	}, nil
}
