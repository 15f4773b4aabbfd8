package redisstore

import (
	"context"
	"time"

	"stockmonitor-service/internal/application"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "stockmonitor:idem:"

var _ application.IdempotencyStore = (*Store)(nil)

type Store struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{Client: client, TTL: ttl}
}

func (s *Store) TryReserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.Client.SetNX(ctx, keyPrefix+key, "1", s.TTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Ping backs the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}
