package testsupport

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goliatone/go-cv-backend/internal/storage"
)

var dbCounter atomic.Int64

// MemoryDSN returns a DSN for a private shared-cache memory database.
func MemoryDSN(name string) string {
	return fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_fk=1", name, dbCounter.Add(1))
}

// OpenTestDB opens an isolated in-memory SQLite database with the schema
// created. It is closed when the test ends.
func OpenTestDB(t testing.TB) *storage.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	ctx := context.Background()

	db, err := storage.Open(ctx, storage.Options{
		Driver:         storage.DriverSQLite,
		DSN:            MemoryDSN(name),
		ConnectRetries: 1,
	}, nil)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := storage.CreateSchema(ctx, db.DB); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return db
}
