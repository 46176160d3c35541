package repositorycache

import (
	"context"
	"time"

	"github.com/goliatone/go-cv-backend/cache"
	"github.com/goliatone/go-cv-backend/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository is the read gateway a CachedRepository wraps.
type Repository[T any] interface {
	List(ctx context.Context, criteria ...storage.SelectCriteria) ([]*T, error)
	ListWithRelations(ctx context.Context, relations ...storage.Relation) ([]*T, error)
	GetByID(ctx context.Context, id uuid.UUID, relations ...storage.Relation) (*T, error)
}

var _ Repository[struct{}] = (*storage.Repository[struct{}])(nil)

// Cacheable list shapes. Combined with a prefix they form the cache key,
// e.g. "companies" + ShapeAllWithProjects = "companies_all_with_projects".
const (
	ShapeAll              = "All"
	ShapeAllWithProjects  = "AllWithProjects"
	ShapeAllWithRelations = "AllWithRelations"
)

// Options is read once when the repository is built.
type Options struct {
	// Enabled turns caching on for the list shapes.
	Enabled bool
	// Expiration is how long a cached list stays visible.
	Expiration time.Duration
	// Metrics is optional.
	Metrics *Metrics
}

// DefaultOptions returns caching disabled with a 5 minute expiration.
func DefaultOptions() Options {
	return Options{Enabled: false, Expiration: 5 * time.Minute}
}

// CachedRepository decorates a Repository with read-through caching for the
// full-list shapes. Lookups by id and filtered lists always reach the base
// repository. Nothing invalidates cached lists; they expire.
type CachedRepository[T any] struct {
	base          Repository[T]
	cache         cache.CacheService
	keySerializer cache.KeySerializer
	prefix        string
	opts          Options
	logger        *zap.Logger
}

// New creates a CachedRepository for one entity. prefix namespaces the keys.
func New[T any](base Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer, prefix string, opts Options, logger *zap.Logger) *CachedRepository[T] {
	if keySerializer == nil {
		keySerializer = cache.NewDefaultKeySerializer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Expiration <= 0 {
		opts.Expiration = DefaultOptions().Expiration
	}
	if cacheService == nil {
		opts.Enabled = false
	}

	return &CachedRepository[T]{
		base:          base,
		cache:         cacheService,
		keySerializer: keySerializer,
		prefix:        prefix,
		opts:          opts,
		logger:        logger.Named("query").With(zap.String("entity", prefix)),
	}
}

// Enabled reports whether list shapes are cached.
func (c *CachedRepository[T]) Enabled() bool {
	return c.opts.Enabled
}

// Key returns the cache key used for shape.
func (c *CachedRepository[T]) Key(shape string) string {
	return c.keySerializer.SerializeKey(c.prefix, shape)
}

// ListAll returns every row in canonical order.
func (c *CachedRepository[T]) ListAll(ctx context.Context) ([]*T, error) {
	return c.cached(ctx, ShapeAll, func(ctx context.Context) ([]*T, error) {
		return c.base.List(ctx)
	})
}

// ListAllWith returns every row with relations loaded, cached under shape.
func (c *CachedRepository[T]) ListAllWith(ctx context.Context, shape string, relations ...storage.Relation) ([]*T, error) {
	return c.cached(ctx, shape, func(ctx context.Context) ([]*T, error) {
		return c.base.ListWithRelations(ctx, relations...)
	})
}

// ListWhere returns the rows matching criteria. Never cached.
func (c *CachedRepository[T]) ListWhere(ctx context.Context, criteria ...storage.SelectCriteria) ([]*T, error) {
	return c.base.List(ctx, criteria...)
}

// GetByID returns the row with id, or nil when it does not exist. Never
// cached.
func (c *CachedRepository[T]) GetByID(ctx context.Context, id uuid.UUID, relations ...storage.Relation) (*T, error) {
	record, err := c.base.GetByID(ctx, id, relations...)
	if err != nil {
		if storage.IsNotFound(err) {
			c.logger.Warn("entity not found", zap.String("id", id.String()))
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

func (c *CachedRepository[T]) cached(ctx context.Context, shape string, fetch cache.FetchFn[[]*T]) ([]*T, error) {
	if !c.opts.Enabled {
		return fetch(ctx)
	}

	key := c.Key(shape)
	records, hit, err := cache.GetOrFetch(ctx, c.cache, key, c.opts.Expiration, func(ctx context.Context) ([]*T, error) {
		c.logger.Info("cache miss, fetching from database", zap.String("key", key))
		return fetch(ctx)
	})
	if err != nil {
		c.opts.Metrics.observe(c.prefix, resultError)
		return nil, err
	}

	if hit {
		c.opts.Metrics.observe(c.prefix, resultHit)
		c.logger.Info("cache hit", zap.String("key", key), zap.Int("count", len(records)))
	} else {
		c.opts.Metrics.observe(c.prefix, resultMiss)
	}

	return records, nil
}
