// Package testutil opens throwaway stores for tests.
package testutil

import (
	"testing"

	"github.com/anonto42/red-social/backend/internal/repositories"
	"github.com/anonto42/red-social/backend/pkg/config"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.OpenSQL("sqlite", "file::memory:")
	require.NoError(t, err)
	db.Logger = logger.Default.LogMode(logger.Silent)

	require.NoError(t, repositories.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
