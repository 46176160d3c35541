// Package config loads the service configuration from a YAML file and
// double-underscore environment overrides (Cache__EnableCaching).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-cv-backend/internal/storage"
	goerrors "github.com/goliatone/go-errors"
	"gopkg.in/yaml.v3"
)

// TextCodeInvalidConfig marks configuration errors.
const TextCodeInvalidConfig = "INVALID_CONFIG"

// EnvConfigPath names the variable that overrides the config file path.
const EnvConfigPath = "CV_CONFIG"

// DefaultPath is read when neither an explicit path nor CV_CONFIG is set.
const DefaultPath = "config.yaml"

// Cache backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Server    ServerConfig    `yaml:"Server"`
	Database  DatabaseConfig  `yaml:"Database"`
	Cache     CacheConfig     `yaml:"Cache"`
	RateLimit RateLimitConfig `yaml:"RateLimit"`
	Cors      CorsConfig      `yaml:"Cors"`
	GraphQL   GraphQLConfig   `yaml:"GraphQL"`
	Logging   LoggingConfig   `yaml:"Logging"`
}

type ServerConfig struct {
	Address         string        `yaml:"Address"`
	ShutdownTimeout time.Duration `yaml:"ShutdownTimeout"`
	Playground      bool          `yaml:"Playground"`
}

type DatabaseConfig struct {
	Driver           string        `yaml:"Driver"`
	ConnectionString string        `yaml:"ConnectionString"`
	MaxOpenConns     int           `yaml:"MaxOpenConns"`
	MaxIdleConns     int           `yaml:"MaxIdleConns"`
	ConnectRetries   int           `yaml:"ConnectRetries"`
	RetryDelay       time.Duration `yaml:"RetryDelay"`
	CommandTimeout   time.Duration `yaml:"CommandTimeout"`
	Seed             bool          `yaml:"Seed"`
}

type CacheConfig struct {
	EnableCaching     bool        `yaml:"EnableCaching"`
	ExpirationMinutes int         `yaml:"ExpirationMinutes"`
	Backend           string      `yaml:"Backend"`
	Capacity          int         `yaml:"Capacity"`
	NumShards         int         `yaml:"NumShards"`
	Redis             RedisConfig `yaml:"Redis"`
}

// Expiration is the lifetime of a cached collection.
func (c CacheConfig) Expiration() time.Duration {
	return time.Duration(c.ExpirationMinutes) * time.Minute
}

type RedisConfig struct {
	Addr     string `yaml:"Addr"`
	Password string `yaml:"Password"`
	DB       int    `yaml:"DB"`
}

type RateLimitConfig struct {
	EnableRateLimiting bool `yaml:"EnableRateLimiting"`
	PermitLimit        int  `yaml:"PermitLimit"`
	// Window is in seconds.
	Window int `yaml:"Window"`
}

func (r RateLimitConfig) WindowDuration() time.Duration {
	return time.Duration(r.Window) * time.Second
}

type CorsConfig struct {
	AllowedOrigins []string `yaml:"AllowedOrigins"`
}

type GraphQLConfig struct {
	DefaultPageSize int `yaml:"DefaultPageSize"`
	MaxPageSize     int `yaml:"MaxPageSize"`
}

type LoggingConfig struct {
	Level       string `yaml:"Level"`
	Development bool   `yaml:"Development"`
}

// Defaults returns the configuration used for anything the file and the
// environment leave unset.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Address:         ":8080",
			ShutdownTimeout: 10 * time.Second,
			Playground:      true,
		},
		Database: DatabaseConfig{
			Driver:         storage.DriverPostgres,
			MaxOpenConns:   10,
			MaxIdleConns:   5,
			ConnectRetries: 3,
			RetryDelay:     2 * time.Second,
			CommandTimeout: 30 * time.Second,
			Seed:           true,
		},
		Cache: CacheConfig{
			EnableCaching:     false,
			ExpirationMinutes: 5,
			Backend:           BackendMemory,
			Capacity:          10000,
			NumShards:         256,
			Redis:             RedisConfig{Addr: "localhost:6379"},
		},
		RateLimit: RateLimitConfig{
			PermitLimit: 100,
			Window:      60,
		},
		GraphQL: GraphQLConfig{
			DefaultPageSize: 10,
			MaxPageSize:     50,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// Load reads path (or CV_CONFIG, or config.yaml), applies environment
// overrides and validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment.
func LoadWithEnv(path string, lookup LookupFunc) (Config, error) {
	if path == "" {
		if p, ok := lookup(EnvConfigPath); ok && p != "" {
			path = p
		} else {
			path = DefaultPath
		}
	}

	cfg := Defaults()

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, invalid(fmt.Sprintf("parse %s", path), err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, invalid(fmt.Sprintf("read %s", path), err)
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func invalid(msg string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, msg).WithTextCode(TextCodeInvalidConfig)
}

type override struct {
	key   string
	apply func(cfg *Config, value string) error
}

func overrides() []override {
	return []override{
		{"Server__Address", setString(func(c *Config) *string { return &c.Server.Address })},
		{"Server__Playground", setBool(func(c *Config) *bool { return &c.Server.Playground })},
		{"Database__Driver", setString(func(c *Config) *string { return &c.Database.Driver })},
		{"Database__ConnectionString", setString(func(c *Config) *string { return &c.Database.ConnectionString })},
		{"ConnectionStrings__DefaultConnection", setString(func(c *Config) *string { return &c.Database.ConnectionString })},
		{"Database__Seed", setBool(func(c *Config) *bool { return &c.Database.Seed })},
		{"Cache__EnableCaching", setBool(func(c *Config) *bool { return &c.Cache.EnableCaching })},
		{"Cache__ExpirationMinutes", setInt(func(c *Config) *int { return &c.Cache.ExpirationMinutes })},
		{"Cache__Backend", setString(func(c *Config) *string { return &c.Cache.Backend })},
		{"Cache__Redis__Addr", setString(func(c *Config) *string { return &c.Cache.Redis.Addr })},
		{"Cache__Redis__Password", setString(func(c *Config) *string { return &c.Cache.Redis.Password })},
		{"RateLimit__EnableRateLimiting", setBool(func(c *Config) *bool { return &c.RateLimit.EnableRateLimiting })},
		{"RateLimit__PermitLimit", setInt(func(c *Config) *int { return &c.RateLimit.PermitLimit })},
		{"RateLimit__Window", setInt(func(c *Config) *int { return &c.RateLimit.Window })},
		{"Cors__AllowedOrigins", func(c *Config, v string) error {
			c.Cors.AllowedOrigins = splitList(v)
			return nil
		}},
		{"Logging__Level", setString(func(c *Config) *string { return &c.Logging.Level })},
	}
}

func applyEnv(cfg *Config, lookup LookupFunc) error {
	for _, o := range overrides() {
		value, ok := lookup(o.key)
		if !ok {
			continue
		}
		if err := o.apply(cfg, strings.TrimSpace(value)); err != nil {
			return invalid(fmt.Sprintf("environment variable %s", o.key), err)
		}
	}
	return nil
}

func setString(field func(*Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*field(c) = v
		return nil
	}
}

func setBool(field func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

func setInt(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
