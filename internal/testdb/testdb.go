// AngelaMos | 2026
// testdb.go

// Package testdb opens a migrated SQLite database for package tests.
package testdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/config"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

func New(t *testing.T) *core.Database {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "kpi.db")

	db, err := core.NewDatabase(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    dsn,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if _, err := core.Migrate(db, dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}
