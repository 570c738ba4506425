package adapter

import (
	"context"

	"github.com/MKhiriev/journal-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_client_mock.go -package=mock

// CatalogClient is the outbound contract for the external NLM catalog.
// Implementations translate directory-level search criteria into catalog
// API calls and map the response into [models.CatalogEntry] values.
type CatalogClient interface {
	// Search queries the catalog and returns the mapped entries.
	// The criteria term is passed through to the catalog unmodified.
	Search(ctx context.Context, criteria models.CatalogCriteria) ([]models.CatalogEntry, error)
}
