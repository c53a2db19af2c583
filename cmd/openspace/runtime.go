package main

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/openspace/internal/adapter/cache"
	"github.com/srgjo27/openspace/internal/adapter/events"
	"github.com/srgjo27/openspace/internal/adapter/repository/postgres"
	"github.com/srgjo27/openspace/internal/config"
	"github.com/srgjo27/openspace/internal/core/ports"
	"github.com/srgjo27/openspace/internal/core/services"
	"github.com/srgjo27/openspace/internal/platform/database"
)

// runtime holds the service and the optional backends built from config.
type runtime struct {
	svc     *services.SeatingService
	cache   *cache.ArrangementCache
	usesDB  bool
	closers []func() error
}

// newRuntime wires the service. fallback is the repository used when no
// database is configured.
func newRuntime(ctx context.Context, cfg *config.Config, fallback ports.ArrangementRepository) (*runtime, error) {
	rt := &runtime{}
	repo := fallback

	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresDB(ctx, database.Config{URL: cfg.DatabaseURL})
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, db.Close)

		if err := database.EnsureSchema(ctx, db); err != nil {
			rt.Close()
			return nil, err
		}

		repo = postgres.NewArrangementRepository(db)
		rt.usesDB = true
	}

	var opts []services.Option

	if cfg.RedisAddr != "" {
		log.Printf("Connecting to Redis at %s...", cfg.RedisAddr)
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: 0})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			rt.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		rt.closers = append(rt.closers, client.Close)

		rt.cache = cache.NewArrangementCache(client, cfg.RedisTTL.Duration)
		opts = append(opts, services.WithCache(rt.cache))
	}

	var publisher ports.EventPublisher = &events.NoopPublisher{}
	if cfg.NATSURL != "" {
		p, err := events.NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			rt.Close()
			return nil, err
		}
		publisher = p
	}
	rt.closers = append(rt.closers, publisher.Close)
	opts = append(opts, services.WithPublisher(publisher))

	rt.svc = services.NewSeatingService(repo, opts...)
	return rt, nil
}

// Close releases backends in reverse order of creation.
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			log.Printf("WARN: close: %v", err)
		}
	}
	rt.closers = nil
}
