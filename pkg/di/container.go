// Package di wires the service together: cache backend, query services,
// GraphQL executor and the HTTP application.
package di

import (
	"context"
	"io"

	"github.com/benbjohnson/clock"
	"github.com/gofiber/fiber/v3"
	"github.com/goliatone/go-cv-backend/cache"
	"github.com/goliatone/go-cv-backend/internal/config"
	"github.com/goliatone/go-cv-backend/internal/graphql"
	"github.com/goliatone/go-cv-backend/internal/queries"
	"github.com/goliatone/go-cv-backend/internal/server"
	"github.com/goliatone/go-cv-backend/internal/storage"
	"github.com/goliatone/go-cv-backend/repositorycache"
	goerrors "github.com/goliatone/go-errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Options are the process level collaborators the container builds on.
type Options struct {
	Config   config.Config
	DB       *storage.DB
	Registry *prometheus.Registry
	Logger   *zap.Logger
	// Clock drives the memory cache expiry. Nil means the wall clock.
	Clock clock.Clock
	// RedisClient replaces the client built from Config.Cache.Redis.
	RedisClient redis.UniversalClient
}

// Container holds the singletons of one running service.
type Container struct {
	cacheService  cache.CacheService
	keySerializer cache.KeySerializer
	queries       *queries.Set
	executor      *graphql.Executor
	app           *fiber.App
	config        config.Config
	logger        *zap.Logger
}

// NewContainer builds every component from opts. The cache backend is only
// created when caching is enabled.
func NewContainer(ctx context.Context, opts Options) (*Container, error) {
	if opts.DB == nil {
		return nil, goerrors.New("database is required", goerrors.CategoryInternal)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	cfg := opts.Config

	cacheService, err := newCacheService(ctx, cfg.Cache, opts)
	if err != nil {
		return nil, err
	}

	metrics, err := repositorycache.NewMetrics(registry)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "register cache metrics")
	}

	keySerializer := cache.NewDefaultKeySerializer()
	set := queries.New(queries.Deps{
		DB:            opts.DB.DB,
		Cache:         cacheService,
		KeySerializer: keySerializer,
		Options: repositorycache.Options{
			Enabled:    cfg.Cache.EnableCaching,
			Expiration: cfg.Cache.Expiration(),
			Metrics:    metrics,
		},
		Logger: logger,
	})

	executor, err := graphql.New(set, graphql.PageConfig{
		DefaultSize: cfg.GraphQL.DefaultPageSize,
		MaxSize:     cfg.GraphQL.MaxPageSize,
	}, logger)
	if err != nil {
		return nil, err
	}

	app := server.New(server.Config{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		RateLimit: server.RateLimitConfig{
			Enabled:     cfg.RateLimit.EnableRateLimiting,
			PermitLimit: cfg.RateLimit.PermitLimit,
			Window:      cfg.RateLimit.WindowDuration(),
		},
	}, server.Deps{
		GraphQL:  graphql.NewHandler(executor, server.PathGraphQL, cfg.Server.Playground, logger),
		Database: opts.DB,
		Registry: registry,
		Logger:   logger,
	})

	logger.Info("container ready",
		zap.Bool("caching", cfg.Cache.EnableCaching),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("rate_limiting", cfg.RateLimit.EnableRateLimiting),
	)

	return &Container{
		cacheService:  cacheService,
		keySerializer: keySerializer,
		queries:       set,
		executor:      executor,
		app:           app,
		config:        cfg,
		logger:        logger,
	}, nil
}

func newCacheService(ctx context.Context, cfg config.CacheConfig, opts Options) (cache.CacheService, error) {
	if !cfg.EnableCaching {
		return nil, nil
	}

	switch cfg.Backend {
	case config.BackendRedis:
		return cache.NewRedisCacheService(ctx, cache.RedisConfig{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			Namespace: cache.Namespace(graphql.SchemaSource()),
			Client:    opts.RedisClient,
		})
	default:
		cc := cache.DefaultConfig()
		cc.Capacity = cfg.Capacity
		cc.NumShards = cfg.NumShards
		cc.TTL = cfg.Expiration()
		cc.Clock = opts.Clock
		return cache.NewCacheService(cc)
	}
}

// CacheService returns the cache backend, nil when caching is disabled.
func (c *Container) CacheService() cache.CacheService {
	return c.cacheService
}

func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

func (c *Container) Queries() *queries.Set {
	return c.queries
}

func (c *Container) Executor() *graphql.Executor {
	return c.executor
}

// App returns the HTTP application ready to Listen.
func (c *Container) App() *fiber.App {
	return c.app
}

func (c *Container) Config() config.Config {
	return c.config
}

// Close logs the cache counters and releases the cache backend. The
// database belongs to the caller.
func (c *Container) Close() error {
	if reporter, ok := c.cacheService.(cache.StatsReporter); ok {
		stats := reporter.Stats()
		c.logger.Info("cache stats",
			zap.Int64("hits", stats.Hits),
			zap.Int64("misses", stats.Misses),
			zap.Int64("expirations", stats.Expirations),
			zap.Int("entries", stats.Size),
		)
	}
	if closer, ok := c.cacheService.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
