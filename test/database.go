package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// DB connects to a fresh sqlite database in a temporary file. The
// connection is closed when the test finishes.
func DB(t *testing.T) *gorm.DB {
	db, err := models.Connect(models.Dialector("sqlite", TmpFile(t)))
	require.Nil(t, err, "Database initialization failed")

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// CloseDB closes the database connection. This enables testing the handling
// of database errors.
func CloseDB(t *testing.T, db *gorm.DB) {
	sqlDB, err := db.DB()
	require.Nil(t, err, "Failed to get database resource")
	sqlDB.Close()
}
