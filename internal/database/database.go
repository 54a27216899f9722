package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	config "github.com/mstanic/telemetry-hub/internal/config"
)

// Setup opens the database at the configured path and brings the schema up to
// date. Callers own the returned handle; there is no package-level instance.
func Setup() (*gorm.DB, error) {
	return Open(config.DBPath())
}

func Open(dbPath string) (*gorm.DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// TranslateError turns SQLite unique-constraint failures into
	// gorm.ErrDuplicatedKey, which the store relies on for dedup.
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.Exec("PRAGMA foreign_keys = ON")

	err = Migrate(db)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
