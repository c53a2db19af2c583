package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/openspace/internal/core/domain"
)

const (
	keyPrefix = "openspace:arrangement:"
	latestKey = keyPrefix + "latest"
)

var ErrCacheMiss = errors.New("cache miss")

// ArrangementCache keeps arrangements as JSON in Redis and remembers the
// most recently stored id.
type ArrangementCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewArrangementCache(client *redis.Client, ttl time.Duration) *ArrangementCache {
	return &ArrangementCache{client: client, ttl: ttl}
}

func arrangementKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (c *ArrangementCache) Set(ctx context.Context, a *domain.Arrangement) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to encode arrangement: %w", err)
	}

	if err := c.client.Set(ctx, arrangementKey(a.ID), string(data), c.ttl).Err(); err != nil {
		return err
	}

	return c.client.Set(ctx, latestKey, a.ID.String(), c.ttl).Err()
}

func (c *ArrangementCache) Get(ctx context.Context, id uuid.UUID) (*domain.Arrangement, error) {
	data, err := c.client.Get(ctx, arrangementKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var a domain.Arrangement
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, fmt.Errorf("failed to decode cached arrangement %s: %w", id, err)
	}

	return &a, nil
}

// Latest returns the id of the most recently cached arrangement.
func (c *ArrangementCache) Latest(ctx context.Context) (uuid.UUID, error) {
	raw, err := c.client.Get(ctx, latestKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrCacheMiss
		}
		return uuid.Nil, err
	}

	return uuid.Parse(raw)
}
