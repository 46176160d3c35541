package cacheinfra

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/viccon/sturdyc"
)

// Config holds the configuration for the sturdyc memory backend.
type Config struct {
	// Capacity defines the maximum number of entries that the cache can store.
	// Must be greater than 0.
	Capacity int

	// NumShards determines the number of cache shards for concurrent access.
	// Must be greater than 0. Default: 256
	NumShards int

	// TTL is the upper bound on how long sturdyc keeps an entry around.
	// Per-entry expiry passed to Set is evaluated on top of it and should
	// not exceed it.
	TTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when the cache reaches its capacity. Must be between 1-100.
	EvictionPercentage int

	// EvictionInterval sets how often sturdyc sweeps expired entries.
	// Zero value uses the default interval.
	EvictionInterval time.Duration

	// Clock is used to stamp and check entry expiry. Nil means wall clock.
	Clock clock.Clock
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          256,
		TTL:                5 * time.Minute,
		EvictionPercentage: 10,
		EvictionInterval:   0,
		Clock:              clock.New(),
	}
}

// ToSturdycOptions converts the Config to sturdyc.Option slice.
// Capacity, NumShards, TTL, and EvictionPercentage are passed directly
// to sturdyc.New() and are not included in the options.
func (c Config) ToSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}

	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}

	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}

	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}

	if c.EvictionInterval < 0 {
		return &ConfigError{Field: "EvictionInterval", Message: "must be non-negative"}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// Stats is a point-in-time view of the memory backend counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Expirations int64
	Size        int
}

type entry struct {
	value     any
	expiresAt time.Time
}

// SturdycService is the in-process cache backend. Values are stored as-is,
// so a hit returns the exact snapshot that was written.
type SturdycService struct {
	client *sturdyc.Client[entry]
	clock  clock.Clock
	maxTTL time.Duration

	hits        *xsync.Counter
	misses      *xsync.Counter
	expirations *xsync.Counter
}

// NewSturdycService validates cfg and builds a sturdyc-backed cache.
func NewSturdycService(cfg Config) (*SturdycService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	client := sturdyc.New[entry](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &SturdycService{
		client:      client,
		clock:       clk,
		maxTTL:      cfg.TTL,
		hits:        xsync.NewCounter(),
		misses:      xsync.NewCounter(),
		expirations: xsync.NewCounter(),
	}, nil
}

// Get returns the value stored under key when it has not yet expired.
// An expired entry is removed and reported as a miss.
func (s *SturdycService) Get(ctx context.Context, key string) (any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	e, ok := s.client.Get(key)
	if !ok {
		s.misses.Inc()
		return nil, false, nil
	}

	if !s.clock.Now().Before(e.expiresAt) {
		s.client.Delete(key)
		s.expirations.Inc()
		s.misses.Inc()
		return nil, false, nil
	}

	s.hits.Inc()
	return e.value, true, nil
}

// Set stores value under key with an absolute expiry of now+ttl.
func (s *SturdycService) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if ttl <= 0 {
		return &ConfigError{Field: "ttl", Message: "must be greater than 0"}
	}

	if ttl > s.maxTTL {
		ttl = s.maxTTL
	}

	s.client.Set(key, entry{value: value, expiresAt: s.clock.Now().Add(ttl)})
	return nil
}

// Stats reports hit/miss counters and the current entry count.
func (s *SturdycService) Stats() Stats {
	return Stats{
		Hits:        s.hits.Value(),
		Misses:      s.misses.Value(),
		Expirations: s.expirations.Value(),
		Size:        s.client.Size(),
	}
}
