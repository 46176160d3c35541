// Package repositorycache provides the generic read-through cache that sits
// between the API layer and the storage gateway.
//
// # Overview
//
// CachedRepository[T] wraps a storage repository for one entity. It caches
// only the unfiltered list shapes:
//
//   - ListAll: every row in canonical order
//   - ListAllWith: every row with relations loaded, under a named shape
//
// Lookups by id (GetByID) and filtered lists (ListWhere) always go to the
// database.
//
// # Basic Usage
//
//	base := storage.NewRepository[model.Company](db, "company", "name")
//	svc, _ := cache.NewCacheService(cache.DefaultConfig())
//
//	companies := repositorycache.New(base, svc, cache.NewDefaultKeySerializer(),
//		"companies", repositorycache.Options{Enabled: true, Expiration: 5 * time.Minute}, logger)
//
//	all, err := companies.ListAll(ctx) // key "companies_all"
//
// # Caching Behavior
//
//  1. When caching is disabled the base repository is called directly and
//     the cache is never touched.
//  2. Otherwise the key is looked up; a present and unexpired entry is
//     returned as stored.
//  3. On a miss the base repository is called and the result is stored with
//     an absolute expiry of now+Expiration.
//
// Writes never invalidate entries, so a cached list may be stale for up to
// Expiration. Two concurrent misses may both hit the database; the last
// write wins.
//
// # Logging
//
// One info line on a hit (with the item count), one info line on a miss
// and a warning when GetByID finds nothing.
//
// # Error Handling
//
// Storage and cache errors are returned unchanged. There is no retry and no
// fallback to stale data. A missing row is not an error: GetByID returns
// nil, nil.
package repositorycache
