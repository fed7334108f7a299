package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/billboardbooker/marketplace/internal/api"
	"github.com/billboardbooker/marketplace/internal/api/metrics"
	"github.com/billboardbooker/marketplace/internal/core/domain"
	"github.com/billboardbooker/marketplace/internal/core/ports"
	"github.com/billboardbooker/marketplace/internal/core/service"
	"github.com/billboardbooker/marketplace/internal/core/store"
	"github.com/billboardbooker/marketplace/internal/infrastructure/queue"
	"github.com/billboardbooker/marketplace/internal/infrastructure/storage/filedoc"
	"github.com/billboardbooker/marketplace/internal/infrastructure/storage/memdoc"
	"github.com/billboardbooker/marketplace/internal/infrastructure/storage/mongodoc"
	"github.com/billboardbooker/marketplace/internal/infrastructure/storage/redisdoc"
	"github.com/billboardbooker/marketplace/internal/pkg/config"
	"github.com/billboardbooker/marketplace/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	backend, cleanup, err := newBackend(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("storage backend init failed")
	}
	defer cleanup()

	docStore := store.New(backend, log)

	// Change bus observers: write counter, plus the optional AMQP fanout.
	docStore.Subscribe(func(session *domain.Session) {
		loggedIn := "false"
		if session != nil {
			loggedIn = "true"
		}
		metrics.ChangeNotificationsTotal.WithLabelValues(loggedIn).Inc()
	})
	if cfg.AMQP.URL != "" {
		publisher := queue.NewChangePublisher(cfg.AMQP.URL, cfg.AMQP.Queue, log)
		docStore.Subscribe(publisher.Observer())
		log.Info().Str("queue", cfg.AMQP.Queue).Msg("change event publisher enabled")
	}

	scheme := service.SchemeFromName(cfg.PasswordScheme)
	authService := service.NewAuthService(docStore, scheme, cfg.JWTSecret, 24*time.Hour)
	inventory := service.NewInventoryService(docStore, log)

	e := api.NewRouter(docStore, authService, inventory, cfg.JWTSecret, log)

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Str("backend", cfg.StorageBackend).
		Str("storage_key", cfg.StorageKey).
		Msg("starting server")

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newBackend builds the configured document backend and the teardown to run
// at exit.
func newBackend(ctx context.Context, cfg *config.Config) (ports.DocumentBackend, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case "memory":
		return memdoc.New(), noop, nil

	case "redis":
		client, err := redisdoc.Connect(ctx, redisdoc.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		return redisdoc.New(client, cfg.StorageKey), func() { _ = client.Close() }, nil

	case "mongo":
		client, db, err := mongodoc.Connect(ctx, mongodoc.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		return mongodoc.New(db, cfg.StorageKey), func() { _ = client.Disconnect(context.Background()) }, nil

	default: // "file"
		return filedoc.New(cfg.File.Dir, cfg.StorageKey), noop, nil
	}
}
