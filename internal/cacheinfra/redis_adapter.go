package cacheinfra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/redis/go-redis/v9"
)

// TextCodeCacheFailure marks errors raised by a cache backend.
const TextCodeCacheFailure = "CACHE_FAILURE"

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	Namespace string
	// Client overrides Addr/Password/DB when set.
	Client redis.UniversalClient
}

// Validate checks the redis configuration.
func (c RedisConfig) Validate() error {
	if c.Client == nil && c.Addr == "" {
		return &ConfigError{Field: "Addr", Message: "must not be empty"}
	}
	if c.DB < 0 {
		return &ConfigError{Field: "DB", Message: "must be non-negative"}
	}
	return nil
}

// Namespace returns the key prefix for a given schema document.
func Namespace(schema string) string {
	return "cv:" + fmt.Sprintf("%016x", xxhash.Sum64String(schema))
}

// RedisService stores msgpack encoded payloads in redis. Get returns an
// Encoded value that callers decode into their concrete type.
type RedisService struct {
	client    redis.UniversalClient
	namespace string
}

// NewRedisService connects to redis and verifies the connection with PING.
func NewRedisService(ctx context.Context, cfg RedisConfig) (*RedisService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := cfg.Client
	if client == nil {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, wrapRedis(err, "ping redis")
	}

	return &RedisService{client: client, namespace: cfg.Namespace}, nil
}

func (s *RedisService) key(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + ":" + key
}

// Get implements cache.CacheService.
func (s *RedisService) Get(ctx context.Context, key string) (any, bool, error) {
	payload, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrapRedis(err, "redis get")
	}
	return Encoded(payload), true, nil
}

// Set implements cache.CacheService. Expiry is delegated to redis.
func (s *RedisService) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		return &ConfigError{Field: "ttl", Message: "must be greater than 0"}
	}

	payload, err := Encode(value)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key(key), []byte(payload), ttl).Err(); err != nil {
		return wrapRedis(err, "redis set")
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *RedisService) Close() error {
	return s.client.Close()
}

func wrapRedis(err error, msg string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, msg).
		WithTextCode(TextCodeCacheFailure)
}
