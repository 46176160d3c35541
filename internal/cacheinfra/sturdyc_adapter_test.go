package cacheinfra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func newTestService(t *testing.T, clk clock.Clock) *SturdycService {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Capacity = 100
	cfg.NumShards = 4
	cfg.TTL = time.Hour
	cfg.Clock = clk

	svc, err := NewSturdycService(cfg)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Capacity != 10000 {
		t.Errorf("expected Capacity to be 10000, got %d", cfg.Capacity)
	}

	if cfg.NumShards != 256 {
		t.Errorf("expected NumShards to be 256, got %d", cfg.NumShards)
	}

	if cfg.TTL != 5*time.Minute {
		t.Errorf("expected TTL to be 5 minutes, got %v", cfg.TTL)
	}

	if cfg.EvictionPercentage != 10 {
		t.Errorf("expected EvictionPercentage to be 10, got %d", cfg.EvictionPercentage)
	}

	if cfg.Clock == nil {
		t.Error("expected Clock to default to the wall clock")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func(mutate func(*Config)) Config {
		cfg := DefaultConfig()
		mutate(&cfg)
		return cfg
	}

	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{name: "valid default config", cfg: DefaultConfig()},
		{name: "zero capacity", cfg: valid(func(c *Config) { c.Capacity = 0 }), wantField: "Capacity"},
		{name: "zero shards", cfg: valid(func(c *Config) { c.NumShards = 0 }), wantField: "NumShards"},
		{name: "zero ttl", cfg: valid(func(c *Config) { c.TTL = 0 }), wantField: "TTL"},
		{name: "eviction too low", cfg: valid(func(c *Config) { c.EvictionPercentage = 0 }), wantField: "EvictionPercentage"},
		{name: "eviction too high", cfg: valid(func(c *Config) { c.EvictionPercentage = 101 }), wantField: "EvictionPercentage"},
		{name: "negative eviction interval", cfg: valid(func(c *Config) { c.EvictionInterval = -time.Second }), wantField: "EvictionInterval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("expected no validation error but got: %v", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, cfgErr.Field)
			}
		})
	}
}

func TestConfig_ToSturdycOptions(t *testing.T) {
	cfg := DefaultConfig()
	if got := len(cfg.ToSturdycOptions()); got != 0 {
		t.Errorf("expected no options for default config, got %d", got)
	}

	cfg.EvictionInterval = time.Second
	if got := len(cfg.ToSturdycOptions()); got != 1 {
		t.Errorf("expected 1 option with eviction interval, got %d", got)
	}
}

func TestSturdycService_GetMissing(t *testing.T) {
	svc := newTestService(t, clock.NewMock())

	value, found, err := svc.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found || value != nil {
		t.Errorf("expected miss, got found=%v value=%v", found, value)
	}

	if stats := svc.Stats(); stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
}

func TestSturdycService_ReturnsSameSnapshot(t *testing.T) {
	svc := newTestService(t, clock.NewMock())
	ctx := context.Background()

	stored := []string{"a", "b"}
	if err := svc.Set(ctx, "letters", stored, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, found, err := svc.Get(ctx, "letters")
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}

	got, ok := value.([]string)
	if !ok {
		t.Fatalf("expected []string, got %T", value)
	}
	if &got[0] != &stored[0] {
		t.Error("expected the stored slice to be returned as-is")
	}

	if stats := svc.Stats(); stats.Hits != 1 || stats.Size != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestSturdycService_ExpiresWithClock(t *testing.T) {
	mock := clock.NewMock()
	svc := newTestService(t, mock)
	ctx := context.Background()

	if err := svc.Set(ctx, "k", 42, 5*time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mock.Add(5*time.Minute - time.Second)
	if _, found, _ := svc.Get(ctx, "k"); !found {
		t.Fatal("expected entry to be present before expiry")
	}

	mock.Add(time.Second)
	if _, found, _ := svc.Get(ctx, "k"); found {
		t.Fatal("expected entry to expire at exactly now+ttl")
	}

	stats := svc.Stats()
	if stats.Expirations != 1 {
		t.Errorf("expected 1 expiration, got %d", stats.Expirations)
	}
	if stats.Size != 0 {
		t.Errorf("expected expired entry to be removed, size=%d", stats.Size)
	}
}

func TestSturdycService_OverwriteResetsExpiry(t *testing.T) {
	mock := clock.NewMock()
	svc := newTestService(t, mock)
	ctx := context.Background()

	_ = svc.Set(ctx, "k", "first", time.Minute)
	mock.Add(50 * time.Second)
	_ = svc.Set(ctx, "k", "second", time.Minute)
	mock.Add(50 * time.Second)

	value, found, err := svc.Get(ctx, "k")
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}
	if value != "second" {
		t.Errorf("expected last write to win, got %v", value)
	}
}

func TestSturdycService_SetRejectsNonPositiveTTL(t *testing.T) {
	svc := newTestService(t, clock.NewMock())

	err := svc.Set(context.Background(), "k", 1, 0)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "ttl" {
		t.Errorf("expected ttl ConfigError, got %v", err)
	}
}

func TestSturdycService_SetReplacesEntry(t *testing.T) {
	svc := newTestService(t, clock.NewMock())
	ctx := context.Background()

	_ = svc.Set(ctx, "companies_all", 1, time.Minute)
	_ = svc.Set(ctx, "skills_all", 2, time.Minute)
	_ = svc.Set(ctx, "companies_all", 3, time.Minute)

	if size := svc.Stats().Size; size != 2 {
		t.Errorf("expected 2 entries, got %d", size)
	}
	if v, found, _ := svc.Get(ctx, "companies_all"); !found || v != 3 {
		t.Errorf("expected the replaced value 3, got %v (found=%v)", v, found)
	}
}

func TestSturdycService_CancelledContext(t *testing.T) {
	svc := newTestService(t, clock.NewMock())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := svc.Get(ctx, "k"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled from Get, got %v", err)
	}
	if err := svc.Set(ctx, "k", 1, time.Minute); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled from Set, got %v", err)
	}
}

func TestNewSturdycService_InvalidConfig(t *testing.T) {
	_, err := NewSturdycService(Config{})
	if err == nil {
		t.Fatal("expected error for zero config")
	}
}
