package service

import (
	"context"

	"github.com/MKhiriev/journal-directory/models"
)

// JournalService is the business contract behind the journal endpoints.
// All methods are safe for concurrent use.
type JournalService interface {
	// ListAll returns the full directory.
	ListAll(ctx context.Context) ([]models.Journal, error)

	// Search returns journals matching the free-text criteria.
	Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Journal, error)

	// BySpecialty returns journals carrying the exact specialty tag.
	BySpecialty(ctx context.Context, specialty string) ([]models.Journal, error)

	// ListSpecialties enumerates all specialty tags in use.
	ListSpecialties(ctx context.Context) ([]string, error)

	// FilterBySpecialty matches specialty tags by substring and returns
	// one summary per matched tag.
	FilterBySpecialty(ctx context.Context, specialty string) ([]models.SpecialtySummary, error)

	// ByISSN returns the journal identified by the (normalized) ISSN.
	ByISSN(ctx context.Context, issn string) (models.Journal, error)

	// RefreshDatabase imports journals from the upstream catalog for the
	// given terms (or the configured defaults when empty) and upserts
	// them into the directory.
	RefreshDatabase(ctx context.Context, terms ...string) (models.OperationStatus, error)

	// RemapSpecialties recomputes the specialty assignment of every
	// directory entry from the mapping rules.
	RemapSpecialties(ctx context.Context) (models.OperationStatus, error)

	// Initialize performs the one-time startup warmup: schema migration
	// and directory warm-read. It is idempotent; only the first call
	// does work.
	Initialize(ctx context.Context) error

	// Ready reports whether Initialize has completed successfully.
	Ready() bool
}

// CatalogService is the business contract behind the external catalog
// search endpoint.
type CatalogService interface {
	// SearchCatalog queries the external NLM catalog.
	SearchCatalog(ctx context.Context, criteria models.CatalogCriteria) ([]models.CatalogEntry, error)
}

// Migrator applies pending schema migrations. Implemented by the store's
// Storages aggregate; abstracted here so service tests can stub it.
type Migrator interface {
	Migrate() error
}
