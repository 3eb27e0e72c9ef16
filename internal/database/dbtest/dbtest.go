// Package dbtest opens throwaway in-memory SQLite databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-customer-payment-service/config"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/database"
	"gorm.io/gorm"
)

// Open returns a migrated database private to t. A single connection keeps
// the in-memory database alive and serializes writers.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.DB{
		DRIVER:     config.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	db, err := cfg.GormConnect()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
