package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/oggyb/barter-match/internal/cache"
	"github.com/oggyb/barter-match/internal/config"
	"github.com/oggyb/barter-match/internal/engine"
	"github.com/oggyb/barter-match/internal/repository"
)

// AppContext holds shared dependencies (DB, Redis, Logger, Engine, etc.)
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Notifier   engine.Notifier
	Logger     *slog.Logger
	Engine     *engine.Engine
}

// New creates a new AppContext and wires the engine to the gorm
// repositories, the Redis cache and the notifier. notifier may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, notifier engine.Notifier, logger *slog.Logger) *AppContext {
	deps := engine.Deps{
		Listings:      repository.NewListingRepository(db),
		Swipes:        repository.NewSwipeRepository(db),
		Matches:       repository.NewMatchRepository(db),
		Chat:          repository.NewChatRepository(db),
		Deals:         repository.NewDealRepository(db),
		Users:         repository.NewUserRepository(db),
		Notifier:      notifier,
		Logger:        logger.With("component", "engine"),
		Greeting:      cfg.Market.GreetingText,
		DiscoverLimit: cfg.Market.DiscoverLimit,
	}
	if rdb != nil {
		deps.Feed = rdb
		deps.Likes = rdb
	}

	return &AppContext{
		Config:     cfg,
		DB:         db,
		RedisCache: rdb,
		Notifier:   notifier,
		Logger:     logger,
		Engine:     engine.New(deps),
	}
}
