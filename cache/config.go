package cache

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/goliatone/go-cv-backend/internal/cacheinfra"
)

// Config exposes in-process cache options for consumers of the cache package.
type Config struct {
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
	EvictionInterval   time.Duration
	// Clock decides entry expiry. Nil means the wall clock.
	Clock clock.Clock
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewCacheService constructs the in-process cache implementation using the provided configuration.
func NewCacheService(cfg Config) (CacheService, error) {
	svc, err := cacheinfra.NewSturdycService(cfg.toInternal())
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// RedisConfig exposes the redis backend options.
type RedisConfig = cacheinfra.RedisConfig

// NewRedisCacheService constructs the redis-backed implementation. Keys are
// prefixed with namespace, see Namespace.
func NewRedisCacheService(ctx context.Context, cfg RedisConfig) (CacheService, error) {
	svc, err := cacheinfra.NewRedisService(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// Namespace derives a key prefix from the exposed schema so that cached
// payloads from an older deployment are never decoded by a newer one.
func Namespace(schema string) string {
	return cacheinfra.Namespace(schema)
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
		Clock:              c.Clock,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
		Clock:              cfg.Clock,
	}
}
