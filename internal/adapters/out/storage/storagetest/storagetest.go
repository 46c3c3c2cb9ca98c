// Package storagetest opens throwaway databases for repository and query tests.
package storagetest

import (
	"testing"

	"storefront/internal/adapters/out/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// OpenSQLite returns a migrated in-memory database that is closed when the test ends.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := storage.Open(storage.Config{
		Driver:     storage.DriverSQLite,
		SQLitePath: storage.MemoryPath,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = storage.Close(db)
	})
	return db
}

// Reset deletes every row, children first.
func Reset(t testing.TB, db *gorm.DB) {
	t.Helper()

	for _, table := range []string{"order_items", "orders", "configs"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
}

// Count returns the number of rows in table.
func Count(t testing.TB, db *gorm.DB, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
