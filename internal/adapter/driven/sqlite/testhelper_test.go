package sqlite

import (
	"context"
	"net/url"
	"testing"
)

// setupTestDB creates a migrated, shared in-memory SQLite database named after
// the test, so reader and writer see the same data and tests stay isolated.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Escape the test name so subtest slashes cannot leak into the DSN query.
	dsn := "file:" + url.PathEscape(t.Name()) + "?mode=memory&cache=shared&" + connPragmas

	db, err := open(context.Background(), dsn, t.Name())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := RunMigrations(db.Writer); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return db
}
