// Package repository implements the engine's storage contracts on gorm.
package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/barter-match/internal/engine"
	svcErr "github.com/oggyb/barter-match/internal/errors"
	"github.com/oggyb/barter-match/internal/utils/pagination"
)

// Compile-time checks.
var (
	_ engine.ListingStore  = (*ListingRepository)(nil)
	_ engine.SwipeStore    = (*SwipeRepository)(nil)
	_ engine.MatchStore    = (*MatchRepository)(nil)
	_ engine.ChatStore     = (*ChatRepository)(nil)
	_ engine.DealStore     = (*DealRepository)(nil)
	_ engine.UserDirectory = (*UserRepository)(nil)
)

// storeErr turns a driver or context failure into StoreUnavailable.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return svcErr.StoreUnavailable(op, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func decodeCursor(token *string) (pagination.Cursor, error) {
	c, err := pagination.Token(token)
	if err != nil {
		return pagination.Cursor{}, svcErr.Validation("%v", err)
	}
	return c, nil
}

// nextToken encodes the cursor pointing after the last row of a page.
func nextToken(key string, ts time.Time) *string {
	token, _ := pagination.Encode(pagination.Cursor{Key: key, Unix: ts.UnixMilli()})
	return &token
}
