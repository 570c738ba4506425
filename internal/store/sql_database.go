package store

import (
	"database/sql"

	"github.com/MKhiriev/journal-directory/internal/logger"
	"github.com/MKhiriev/journal-directory/migrations"
)

// DB wraps the shared *sql.DB connection together with the driver name
// (needed to pick the goose dialect and migration set) and an error
// classificator for retry decisions.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the DB's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
