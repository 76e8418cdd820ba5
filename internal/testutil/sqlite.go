// Package testutil opens throwaway databases for repository and service tests.
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kingrain94/rental-manager-api/internal/config"
	"github.com/kingrain94/rental-manager-api/internal/repository/postgres"
)

// NewDatabase returns a migrated in-memory SQLite database private to the caller.
// The pool is pinned to one connection so transactions never contend for the shared cache.
func NewDatabase(t *testing.T) *config.DatabaseConnections {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, postgres.Migrate(db))

	conns := &config.DatabaseConnections{Writer: db, Reader: db}
	t.Cleanup(func() {
		_ = conns.Close()
	})
	return conns
}
