package cache

import (
	"context"
	"time"

	"github.com/goliatone/go-cv-backend/internal/cacheinfra"
	goerrors "github.com/goliatone/go-errors"
)

// ErrInvalidResultType is returned when a cached value cannot be converted to
// the type requested by GetOrFetch.
var ErrInvalidResultType = goerrors.New("cached value has unexpected type", goerrors.CategoryInternal).
	WithTextCode("CACHE_TYPE_MISMATCH")

// KeySerializer builds a cache key from a namespace plus arbitrary segments.
// It is responsible for producing stable keys across calls.
type KeySerializer interface {
	SerializeKey(method string, args ...any) string
}

// FetchFn is the function signature GetOrFetch expects when loading from the source of truth.
type FetchFn[T any] func(ctx context.Context) (T, error)

// CacheService is a key/value store where every entry carries an absolute
// expiry fixed at write time. Nothing in this module invalidates entries
// early; they are only replaced or left to expire.
type CacheService interface {
	// Get returns the stored value and true when key is present and unexpired.
	Get(ctx context.Context, key string) (any, bool, error)
	// Set stores value under key until now+ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Stats are the lookup counters and entry count of the memory backend.
type Stats = cacheinfra.Stats

// StatsReporter is implemented by backends that count their lookups.
type StatsReporter interface {
	Stats() Stats
}

// Encoded is the value type returned by backends that keep serialized
// payloads (e.g. redis). GetOrFetch decodes it into the requested type.
type Encoded = cacheinfra.Encoded

// GetOrFetch reads key from service and, on a miss, loads the value with
// fetchFn and stores it for ttl. The boolean result reports a cache hit.
// Errors from the cache or from fetchFn are returned unchanged.
func GetOrFetch[T any](ctx context.Context, service CacheService, key string, ttl time.Duration, fetchFn FetchFn[T]) (T, bool, error) {
	var zero T

	cached, found, err := service.Get(ctx, key)
	if err != nil {
		return zero, false, err
	}

	if found {
		value, err := convert[T](cached)
		if err != nil {
			return zero, false, err
		}
		return value, true, nil
	}

	value, err := fetchFn(ctx)
	if err != nil {
		return zero, false, err
	}

	if err := service.Set(ctx, key, value, ttl); err != nil {
		return zero, false, err
	}

	return value, false, nil
}

func convert[T any](cached any) (T, error) {
	var zero T

	if cached == nil {
		return zero, nil
	}

	if value, ok := cached.(T); ok {
		return value, nil
	}

	if payload, ok := cached.(Encoded); ok {
		var value T
		if err := cacheinfra.Decode(payload, &value); err != nil {
			return zero, err
		}
		return value, nil
	}

	return zero, ErrInvalidResultType
}
