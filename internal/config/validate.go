package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-cv-backend/internal/storage"
	goerrors "github.com/goliatone/go-errors"
)

// Validate checks every section and reports all field errors at once.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Server),
		validation.Field(&c.Database),
		validation.Field(&c.Cache),
		validation.Field(&c.RateLimit),
		validation.Field(&c.GraphQL),
		validation.Field(&c.Logging),
	)
	if err != nil {
		return goerrors.FromOzzoValidation(err, "invalid configuration").WithTextCode(TextCodeInvalidConfig)
	}
	return nil
}

func (s ServerConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Address, validation.Required),
		validation.Field(&s.ShutdownTimeout, validation.Required),
	)
}

func (d DatabaseConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Driver, validation.Required,
			validation.In(storage.DriverPostgres, storage.DriverPQ, storage.DriverSQLite)),
		validation.Field(&d.ConnectionString, validation.Required),
		validation.Field(&d.MaxOpenConns, validation.Min(0)),
		validation.Field(&d.MaxIdleConns, validation.Min(0)),
		validation.Field(&d.ConnectRetries, validation.Required, validation.Min(1)),
	)
}

func (c CacheConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ExpirationMinutes, validation.When(c.EnableCaching, validation.Required, validation.Min(1))),
		validation.Field(&c.Backend, validation.Required, validation.In(BackendMemory, BackendRedis)),
		validation.Field(&c.Capacity, validation.When(c.Backend == BackendMemory, validation.Min(1))),
		validation.Field(&c.NumShards, validation.When(c.Backend == BackendMemory, validation.Min(1))),
		validation.Field(&c.Redis, validation.When(c.EnableCaching && c.Backend == BackendRedis, validation.By(func(any) error {
			return validation.ValidateStruct(&c.Redis, validation.Field(&c.Redis.Addr, validation.Required))
		}))),
	)
}

func (r RateLimitConfig) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PermitLimit, validation.When(r.EnableRateLimiting, validation.Required, validation.Min(1))),
		validation.Field(&r.Window, validation.When(r.EnableRateLimiting, validation.Required, validation.Min(1))),
	)
}

func (g GraphQLConfig) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.MaxPageSize, validation.Required, validation.Min(1)),
		validation.Field(&g.DefaultPageSize, validation.Required, validation.Min(1), validation.Max(g.MaxPageSize)),
	)
}

func (l LoggingConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
	)
}
