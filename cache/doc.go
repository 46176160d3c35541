// Package cache defines the cache contract used by the query layer and the
// helpers built on top of it.
//
// # Overview
//
//   - CacheService: a key/value store where every entry carries an absolute
//     expiry fixed when it is written
//   - KeySerializer: builds the static snake_case keys used for cached lists
//   - GetOrFetch: typed read-through helper that reports hit or miss
//
// Entries are never invalidated by writes. A value stays visible until its
// expiry passes and is then reloaded from the database on the next read.
//
// # Basic Usage
//
//	svc, _ := cache.NewCacheService(cache.DefaultConfig())
//	key := cache.NewDefaultKeySerializer().SerializeKey("companies", "All")
//	companies, hit, err := cache.GetOrFetch(ctx, svc, key, 5*time.Minute,
//		func(ctx context.Context) ([]*model.Company, error) {
//			return repo.List(ctx)
//		})
//
// # Backends
//
// NewCacheService returns the in-process backend. It stores values as-is, so
// a hit returns the exact snapshot that was cached. NewRedisCacheService
// stores msgpack payloads; GetOrFetch decodes them into the requested type.
// Redis keys are prefixed with Namespace(schema) so a deployment with a
// different GraphQL schema never reads payloads written by another one.
package cache
