package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/journal-directory/internal/adapter"
	"github.com/MKhiriev/journal-directory/internal/logger"
	"github.com/MKhiriev/journal-directory/models"
)

type catalogService struct {
	catalog adapter.CatalogClient

	logger *logger.Logger
}

func NewCatalogService(catalog adapter.CatalogClient, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

func (c *catalogService) SearchCatalog(ctx context.Context, criteria models.CatalogCriteria) ([]models.CatalogEntry, error) {
	criteria.Term = strings.TrimSpace(criteria.Term)
	if criteria.Term == "" {
		return nil, ErrNoCatalogTerm
	}

	return c.catalog.Search(ctx, criteria)
}
