// Package testhelpers builds databases and stores for tests.
package testhelpers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/johnwards/hrdash/internal/database"
	"github.com/johnwards/hrdash/internal/seed"
	"github.com/johnwards/hrdash/internal/store"
)

// NewTestDB returns an in-memory SQLite database opened with the production
// pragmas. It is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// NewMigratedDB returns a test database with the schema applied.
func NewMigratedDB(t *testing.T) *sql.DB {
	t.Helper()

	db := NewTestDB(t)
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// NewSeededStore returns a store on the named backend holding the reference
// data and the three sample employees.
func NewSeededStore(t *testing.T, backend string) *store.Store {
	t.Helper()

	db := NewMigratedDB(t)
	s, err := store.New(db, backend)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := seed.Seed(context.Background(), db, s.Employees); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}
