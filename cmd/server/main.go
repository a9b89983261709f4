package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/oggyb/barter-match/internal/app"
	"github.com/oggyb/barter-match/internal/cache"
	"github.com/oggyb/barter-match/internal/config"
	"github.com/oggyb/barter-match/internal/db"
	"github.com/oggyb/barter-match/internal/engine"
	"github.com/oggyb/barter-match/internal/logger"
	"github.com/oggyb/barter-match/internal/notify"
	"github.com/oggyb/barter-match/internal/server"
	"github.com/oggyb/barter-match/internal/service/market"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}
	if err := db.Migrate(database); err != nil {
		log.Error("failed to migrate db", "err", err)
		os.Exit(1)
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(ctx); err != nil {
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}
	defer redisCache.Close()

	// Notifications go to RabbitMQ when configured, otherwise to the log
	var notifier engine.Notifier = notify.LogEmitter{Logger: log}
	if cfg.RabbitMQ.URL != "" {
		emitter, err := notify.NewAMQPEmitter(notify.AMQPConfig{
			URL:          cfg.RabbitMQ.URL,
			ExchangeName: cfg.RabbitMQ.Exchange,
		}, log)
		if err != nil {
			log.Error("failed to connect to rabbitmq", "err", err)
			os.Exit(1)
		}
		defer emitter.Close()
		notifier = emitter
	}

	appCtx := app.New(cfg, database, redisCache, notifier, log)

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	registrars := []server.Registrar{
		market.NewRegistrar(appCtx),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.StartGRPCServer(gctx, cfg, log, registrars...)
	})
	g.Go(func() error {
		return server.StartMetricsServer(gctx, cfg.Metrics.Addr, log)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
