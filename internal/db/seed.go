package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	seedTags   = []string{"sport", "tech", "books", "music", "garden", "kids", "tools", "art"}
	seedTitles = []string{"Road bike", "Guitar lessons", "Laptop", "Board games", "Lawn mowing", "Camera", "Sewing machine", "Yoga classes"}
)

// SeedTestData resets the database and populates it with demo users,
// listings and swipes.
//
// Behavior:
//  1. Clears every engine table (children first).
//  2. Creates 20 users with hashed passwords.
//  3. Creates 3 listings per user with random tags, kind and value.
//  4. Generates ~200 swipes with ~70% likes. Matches are not seeded: they
//     appear once users like back through the API.
//
// Compatible with both MySQL and SQLite.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"deal_items", "deals", "read_markers", "messages", "matches", "swipes", "listings", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if db.Dialector.Name() == "sqlite" {
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'messages'")
	}
	log.Println("Cleared existing data")

	// --- Seed Users ---
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	userIDs := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		user := User{
			ID:           fmt.Sprintf("user%d", i),
			DisplayName:  fmt.Sprintf("User %d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(hash),
			Location:     []string{"Lisbon", "Porto", "Braga"}[r.Intn(3)],
			Rating:       float64(r.Intn(50)) / 10,
			Active:       true,
			LastLoginAt:  time.Now().Add(-time.Duration(r.Intn(500)) * time.Hour),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		userIDs = append(userIDs, user.ID)
	}
	log.Println("Seeded 20 users.")

	// --- Seed Listings ---
	var listings []Listing
	for _, owner := range userIDs {
		for j := 0; j < 3; j++ {
			value := float64(10 + r.Intn(490))
			l := Listing{
				ID:             uuid.NewString(),
				OwnerID:        owner,
				Kind:           []string{"GOODS", "SERVICES", "BOTH"}[r.Intn(3)],
				Title:          seedTitles[r.Intn(len(seedTitles))],
				Tags:           pickTags(r, 1+r.Intn(3)),
				EstimatedValue: &value,
				Availability:   "AVAILABLE",
				CreatedAt:      time.Now().Add(-time.Duration(r.Intn(72)) * time.Hour),
			}
			if r.Intn(10) == 0 {
				until := time.Now().Add(time.Duration(24+r.Intn(240)) * time.Hour)
				l.ValidUntil = &until
			}
			listings = append(listings, l)
		}
	}
	if err := db.CreateInBatches(&listings, 50).Error; err != nil {
		return fmt.Errorf("failed to seed listings: %w", err)
	}
	log.Printf("Seeded %d listings.", len(listings))

	// --- Seed Swipes (~200) ---
	count := 0
	for _, actor := range userIDs {
		for j := 0; j < 10; j++ {
			l := listings[r.Intn(len(listings))]
			if l.OwnerID == actor {
				continue
			}
			swipe := Swipe{
				FromUserID: actor,
				ListingID:  l.ID,
				OwnerID:    l.OwnerID,
				Liked:      r.Intn(100) < 70, // like probability 70%
			}
			if err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "from_user_id"}, {Name: "listing_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
			}).Create(&swipe).Error; err != nil {
				return fmt.Errorf("failed to seed swipe: %w", err)
			}
			count++
		}
	}
	log.Printf("Seeded %d swipes.", count)

	return nil
}

func pickTags(r *rand.Rand, n int) []string {
	perm := r.Perm(len(seedTags))
	tags := make([]string, 0, n)
	for _, i := range perm[:n] {
		tags = append(tags, seedTags[i])
	}
	return tags
}
