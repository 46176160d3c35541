package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-cv-backend/internal/config"
	"github.com/goliatone/go-cv-backend/internal/storage"
	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"), env(map[string]string{
		"ConnectionStrings__DefaultConnection": "postgres://localhost/cv",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, storage.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/cv", cfg.Database.ConnectionString)
	assert.False(t, cfg.Cache.EnableCaching)
	assert.Equal(t, 5*time.Minute, cfg.Cache.Expiration())
	assert.False(t, cfg.RateLimit.EnableRateLimiting)
	assert.Equal(t, 100, cfg.RateLimit.PermitLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.WindowDuration())
	assert.Empty(t, cfg.Cors.AllowedOrigins)
	assert.Equal(t, 10, cfg.GraphQL.DefaultPageSize)
	assert.Equal(t, 50, cfg.GraphQL.MaxPageSize)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
Server:
  Address: ":9090"
  Playground: false
Database:
  Driver: sqlite
  ConnectionString: "file::memory:?cache=shared"
Cache:
  EnableCaching: true
  ExpirationMinutes: 2
RateLimit:
  EnableRateLimiting: true
  PermitLimit: 20
  Window: 30
Cors:
  AllowedOrigins:
    - https://cv.example.com
`)

	cfg, err := config.LoadWithEnv(path, env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.False(t, cfg.Server.Playground)
	assert.Equal(t, storage.DriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.Cache.EnableCaching)
	assert.Equal(t, 2*time.Minute, cfg.Cache.Expiration())
	assert.True(t, cfg.RateLimit.EnableRateLimiting)
	assert.Equal(t, 20, cfg.RateLimit.PermitLimit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.WindowDuration())
	assert.Equal(t, []string{"https://cv.example.com"}, cfg.Cors.AllowedOrigins)

	// untouched sections keep their defaults
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, config.BackendMemory, cfg.Cache.Backend)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, `
Database:
  ConnectionString: "postgres://file/cv"
Cache:
  EnableCaching: false
`)

	cfg, err := config.LoadWithEnv(path, env(map[string]string{
		"Database__ConnectionString":    "postgres://env/cv",
		"Cache__EnableCaching":          "true",
		"Cache__ExpirationMinutes":      "7",
		"RateLimit__EnableRateLimiting": "true",
		"RateLimit__PermitLimit":        "3",
		"Cors__AllowedOrigins":          "https://a.example.com, https://b.example.com,",
		"Logging__Level":                "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/cv", cfg.Database.ConnectionString)
	assert.True(t, cfg.Cache.EnableCaching)
	assert.Equal(t, 7, cfg.Cache.ExpirationMinutes)
	assert.True(t, cfg.RateLimit.EnableRateLimiting)
	assert.Equal(t, 3, cfg.RateLimit.PermitLimit)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_PathFromEnvironment(t *testing.T) {
	path := writeFile(t, `
Database:
  ConnectionString: "postgres://from-cv-config/cv"
`)

	cfg, err := config.LoadWithEnv("", env(map[string]string{config.EnvConfigPath: path}))
	require.NoError(t, err)
	assert.Equal(t, "postgres://from-cv-config/cv", cfg.Database.ConnectionString)
}

func TestLoad_Errors(t *testing.T) {
	valid := map[string]string{"Database__ConnectionString": "postgres://localhost/cv"}
	with := func(extra map[string]string) map[string]string {
		out := map[string]string{}
		for k, v := range valid {
			out[k] = v
		}
		for k, v := range extra {
			out[k] = v
		}
		return out
	}

	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "missing connection string", env: map[string]string{}},
		{name: "unknown driver", env: with(map[string]string{"Database__Driver": "oracle"})},
		{name: "bad bool", env: with(map[string]string{"Cache__EnableCaching": "maybe"})},
		{name: "bad int", env: with(map[string]string{"RateLimit__PermitLimit": "lots"})},
		{name: "zero expiration with caching", env: with(map[string]string{
			"Cache__EnableCaching":     "true",
			"Cache__ExpirationMinutes": "0",
		})},
		{name: "unknown cache backend", env: with(map[string]string{"Cache__Backend": "memcached"})},
		{name: "redis backend without address", env: with(map[string]string{
			"Cache__EnableCaching": "true",
			"Cache__Backend":       "redis",
			"Cache__Redis__Addr":   "",
		})},
		{name: "zero permit limit with limiting", env: with(map[string]string{
			"RateLimit__EnableRateLimiting": "true",
			"RateLimit__PermitLimit":        "0",
		})},
		{name: "unknown log level", env: with(map[string]string{"Logging__Level": "chatty"})},
		{name: "default page above max", file: "GraphQL:\n  DefaultPageSize: 80\n  MaxPageSize: 50\n", env: valid},
		{name: "malformed yaml", file: "Server: [", env: valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}

			_, err := config.LoadWithEnv(path, env(tt.env))
			require.Error(t, err)
			assert.True(t, goerrors.IsCategory(err, goerrors.CategoryValidation), "got %v", err)

			var typed *goerrors.Error
			require.True(t, goerrors.As(err, &typed))
			assert.Equal(t, config.TextCodeInvalidConfig, typed.TextCode)
		})
	}
}

func TestRateLimitDisabledSkipsLimitChecks(t *testing.T) {
	cfg := config.Defaults()
	cfg.Database.ConnectionString = "postgres://localhost/cv"
	cfg.RateLimit = config.RateLimitConfig{EnableRateLimiting: false}

	assert.NoError(t, cfg.Validate())
}
