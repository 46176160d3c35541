// Package server assembles the fiber application: middleware, health,
// metrics and the GraphQL routes.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/goliatone/go-cv-backend/internal/graphql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Default route paths.
const (
	PathGraphQL = "/graphql"
	PathHealth  = "/health"
	PathMetrics = "/metrics"
)

// RateLimitConfig is a fixed window limit keyed by the request host.
type RateLimitConfig struct {
	Enabled     bool
	PermitLimit int
	Window      time.Duration
}

// Config holds the HTTP layer options.
type Config struct {
	AllowedOrigins []string
	RateLimit      RateLimitConfig
	HealthTimeout  time.Duration
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the routes need.
type Deps struct {
	GraphQL  *graphql.Handler
	Database Pinger
	Registry *prometheus.Registry
	Logger   *zap.Logger
}

// New builds the fiber application.
func New(cfg Config, deps Deps) *fiber.App {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:      "cv-backend",
		ErrorHandler: ErrorHandler(logger),
	})

	var duration *prometheus.HistogramVec
	if deps.Registry != nil {
		duration = NewHTTPMetrics(deps.Registry)
	}

	app.Use(AccessLog(logger, duration))
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	if cfg.RateLimit.Enabled {
		app.Use(limiter.New(limiterConfig(cfg.RateLimit)))
	}

	app.Get(PathHealth, healthHandler(deps.Database, cfg.HealthTimeout))
	if deps.Registry != nil {
		app.Get(PathMetrics, adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}
	if deps.GraphQL != nil {
		deps.GraphQL.RegisterRoutes(app, PathGraphQL)
	}

	return app
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodHead, fiber.MethodPut,
			fiber.MethodDelete, fiber.MethodPatch, fiber.MethodOptions,
		},
	}
}

func limiterConfig(cfg RateLimitConfig) limiter.Config {
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	return limiter.Config{
		Max:        cfg.PermitLimit,
		Expiration: window,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.Host()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(ErrorBody{
				Error:      MessageTooManyRequests,
				StatusCode: fiber.StatusTooManyRequests,
			})
		},
	}
}

// HealthReport is the body of the health endpoint.
type HealthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

const (
	statusHealthy   = "Healthy"
	statusUnhealthy = "Unhealthy"
)

func healthHandler(db Pinger, timeout time.Duration) fiber.Handler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return func(c fiber.Ctx) error {
		report := HealthReport{Status: statusHealthy, Checks: map[string]string{}}
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			report.Checks["database"] = statusHealthy
			if err := db.Ping(ctx); err != nil {
				report.Checks["database"] = statusUnhealthy
				report.Status = statusUnhealthy
			}
		}

		status := fiber.StatusOK
		if report.Status != statusHealthy {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(report)
	}
}
