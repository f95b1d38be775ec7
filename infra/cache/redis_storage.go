// Package cache provides shared key-value storage for HTTP middleware.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RedisStorage implements fiber.Storage on top of Redis so that rate-limit
// counters are shared between server instances.
type RedisStorage struct {
	client  redis.UniversalClient
	prefix  string
	timeout time.Duration
	logger  *slog.Logger
}

var _ fiber.Storage = (*RedisStorage)(nil)

// NewRedisStorage parses cfg.URL, connects and pings the server.
func NewRedisStorage(cfg *config.Redis, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.PoolSize > 0 {
		opt.PoolSize = cfg.PoolSize
	}
	opt.DialTimeout = cfg.DialTimeout
	opt.ReadTimeout = cfg.ReadTimeout
	opt.WriteTimeout = cfg.WriteTimeout

	s := NewRedisStorageWithClient(redis.NewClient(opt), cfg.KeyPrefix, logger)
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		_ = s.client.Close()
		return nil, err
	}
	return s, nil
}

// NewRedisStorageWithClient wraps an existing client.
func NewRedisStorageWithClient(client redis.UniversalClient, prefix string, logger *slog.Logger) *RedisStorage {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStorage{client: client, prefix: prefix, timeout: 3 * time.Second, logger: logger}
}

func (s *RedisStorage) key(key string) string {
	return s.prefix + key
}

func (s *RedisStorage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Get returns nil without error when the key does not exist.
func (s *RedisStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Redis storage get error", "key", key, "error", err)
		return nil, err
	}
	return val, nil
}

// Set stores val under key. A zero exp keeps the key until deleted.
func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Set(ctx, s.key(key), val, exp).Err(); err != nil {
		s.logger.Error("Redis storage set error", "key", key, "error", err)
		return err
	}
	return nil
}

// Delete removes key.
func (s *RedisStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Del(ctx, s.key(key)).Err()
}

// Reset removes every key under the storage prefix.
func (s *RedisStorage) Reset() error {
	ctx, cancel := s.ctx()
	defer cancel()
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close closes the underlying client.
func (s *RedisStorage) Close() error {
	return s.client.Close()
}
