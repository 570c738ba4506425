package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/journal-directory/internal/config"
	"github.com/MKhiriev/journal-directory/internal/logger"
)

// Storages aggregates all persistence-layer dependencies handed to the
// service layer.
type Storages struct {
	JournalRepository JournalRepository

	db *DB
}

// NewStorages opens the database backend selected by cfg and constructs
// the repositories on top of it. The connection is pinged but the schema
// is not migrated here; migration happens during service initialization.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return &Storages{
		JournalRepository: NewJournalRepository(db, log),
		db:                db,
	}, nil
}

// Migrate applies all pending schema migrations.
func (s *Storages) Migrate() error {
	return s.db.Migrate()
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
