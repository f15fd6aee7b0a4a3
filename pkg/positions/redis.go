package positions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pidcanvas/pidcanvas/pkg/errors"
	"github.com/pidcanvas/pidcanvas/pkg/graph"
)

// keyPrefix namespaces position keys in a shared Redis instance.
const keyPrefix = "pidcanvas:positions:"

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// TTL expires unused arrangements. Zero means no expiry.
	TTL time.Duration
}

// RedisStore is a Redis-backed position store for multi-instance
// deployments. Each key's map is stored as one JSON value, so whole-map
// overwrites stay atomic.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (map[string]graph.Position, error) {
	if err := errors.ValidateStoreKey(key); err != nil {
		return nil, err
	}
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var pos map[string]graph.Position
	if err := json.Unmarshal(data, &pos); err != nil {
		return nil, fmt.Errorf("parse positions: %w", err)
	}
	return pos, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, pos map[string]graph.Position) error {
	if err := errors.ValidateStoreKey(key); err != nil {
		return err
	}
	data, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("marshal positions: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := errors.ValidateStoreKey(key); err != nil {
		return err
	}
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
