package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-cv-backend/internal/model"
	goerrors "github.com/goliatone/go-errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"go.uber.org/zap"
)

// Supported values for Options.Driver.
const (
	DriverPostgres = "postgres"
	DriverPQ       = "pq"
	DriverSQLite   = "sqlite"
)

// Options configures Open.
type Options struct {
	Driver         string
	DSN            string
	MaxOpenConns   int
	MaxIdleConns   int
	ConnectRetries int
	RetryDelay     time.Duration
	CommandTimeout time.Duration
	Registerer     prometheus.Registerer
}

// DB is a bun handle plus the resources it owns.
type DB struct {
	*bun.DB
	pool *pgxpool.Pool
	// InMemory is true for SQLite memory databases, which get their schema
	// from the models instead of migrations.
	InMemory bool
}

// Open connects to the configured database, registers models and the query
// hook, and waits until the database answers a ping.
func Open(ctx context.Context, opts Options, logger *zap.Logger) (*DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("storage")

	var (
		db  *DB
		err error
	)

	switch opts.Driver {
	case DriverPostgres, "":
		db, err = openPgx(ctx, opts)
	case DriverPQ:
		db, err = openPQ(opts)
	case DriverSQLite:
		db, err = openSQLite(opts)
	default:
		return nil, goerrors.New("unsupported database driver "+strconv.Quote(opts.Driver), goerrors.CategoryValidation).
			WithTextCode("INVALID_CONFIG")
	}
	if err != nil {
		return nil, wrapQueryErr(err, "database", "open")
	}

	if opts.MaxOpenConns > 0 && !db.InMemory {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}

	model.Register(db.DB)
	db.AddQueryHook(NewQueryHook(logger, opts.Registerer))

	if err := pingWithRetry(ctx, db, opts, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("database connected",
		zap.String("driver", driverName(opts.Driver)),
		zap.Bool("in_memory", db.InMemory),
	)
	return db, nil
}

func openPgx(ctx context.Context, opts Options) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(opts.DSN)
	if err != nil {
		return nil, err
	}

	if opts.CommandTimeout > 0 {
		cfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(opts.CommandTimeout.Milliseconds(), 10)
	}
	if opts.MaxOpenConns > 0 {
		cfg.MaxConns = int32(opts.MaxOpenConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sqldb := stdlib.OpenDBFromPool(pool)
	return &DB{DB: bun.NewDB(sqldb, pgdialect.New()), pool: pool}, nil
}

func openPQ(opts Options) (*DB, error) {
	sqldb, err := sql.Open("postgres", opts.DSN)
	if err != nil {
		return nil, err
	}
	return &DB{DB: bun.NewDB(sqldb, pgdialect.New())}, nil
}

func openSQLite(opts Options) (*DB, error) {
	sqldb, err := sql.Open("sqlite3", opts.DSN)
	if err != nil {
		return nil, err
	}

	inMemory := IsMemoryDSN(opts.DSN)
	if inMemory {
		// every connection to a shared memory DSN sees the same data, but
		// writes must still be serialized.
		sqldb.SetMaxOpenConns(1)
		sqldb.SetConnMaxIdleTime(0)
		sqldb.SetConnMaxLifetime(0)
	}

	return &DB{DB: bun.NewDB(sqldb, sqlitedialect.New()), InMemory: inMemory}, nil
}

// IsMemoryDSN reports whether dsn points at an in-memory SQLite database.
func IsMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func pingWithRetry(ctx context.Context, db *DB, opts Options, logger *zap.Logger) error {
	attempts := opts.ConnectRetries
	if attempts < 1 {
		attempts = 1
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	var err error
	for i := 1; i <= attempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}

		logger.Warn("database ping failed",
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)

		if i == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return goerrors.Wrap(err, goerrors.CategoryExternal, fmt.Sprintf("database unreachable after %d attempts", attempts)).
		WithTextCode(TextCodeUnavailable)
}

// Ping checks the connection, wrapping failures as unavailable.
func (d *DB) Ping(ctx context.Context) error {
	return wrapQueryErr(d.PingContext(ctx), "database", "ping")
}

// MigrationDialect returns the goose dialect name for the connection.
func (d *DB) MigrationDialect() string {
	if d.DB.Dialect().Name() == dialect.SQLite {
		return "sqlite3"
	}
	return "postgres"
}

// Close closes the bun handle and the pgx pool when present.
func (d *DB) Close() error {
	err := d.DB.Close()
	if d.pool != nil {
		d.pool.Close()
	}
	return err
}

func driverName(d string) string {
	if d == "" {
		return DriverPostgres
	}
	return d
}
