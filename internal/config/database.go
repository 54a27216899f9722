package config

import (
	"os"
	"path/filepath"
)

const (
	DB_NAME = "telemetry.sqlite"
)

func DBPath() string {
	if dbPath := os.Getenv("TELEMETRY_HUB_DB_PATH"); dbPath != "" {
		return dbPath
	}

	return filepath.Join(DataDir(), DB_NAME)
}
