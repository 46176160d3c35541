package storage

import (
	"context"
	"database/sql"
	"embed"
	"sync"

	goerrors "github.com/goliatone/go-errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// goose keeps its dialect, filesystem and logger in package globals.
var gooseMu sync.Mutex

type gooseLogger struct {
	log *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...any) { l.log.Infof(format, v...) }
func (l gooseLogger) Fatalf(format string, v ...any) { l.log.Fatalf(format, v...) }

// Migrate applies the embedded migrations for dialect ("postgres" or
// "sqlite3") up to the latest version.
func Migrate(ctx context.Context, db *sql.DB, dialect string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	dir := "migrations/postgres"
	if dialect == "sqlite3" {
		dir = "migrations/sqlite"
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{log: logger.Named("migrate").Sugar()})

	if err := goose.SetDialect(dialect); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "set migration dialect").
			WithTextCode("INVALID_CONFIG")
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return wrapQueryErr(err, "schema", "migrate")
	}

	return nil
}

// Prepare brings the schema up to date: in-memory databases get their
// tables from the models, everything else runs the migrations.
func Prepare(ctx context.Context, db *DB, logger *zap.Logger) error {
	if db.InMemory {
		return CreateSchema(ctx, db.DB)
	}
	return Migrate(ctx, db.DB.DB, db.MigrationDialect(), logger)
}
