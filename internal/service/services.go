package service

import (
	"github.com/MKhiriev/journal-directory/internal/adapter"
	"github.com/MKhiriev/journal-directory/internal/config"
	"github.com/MKhiriev/journal-directory/internal/logger"
	"github.com/MKhiriev/journal-directory/internal/store"
)

type Services struct {
	JournalService JournalService
	CatalogService CatalogService
}

func NewServices(storages *store.Storages, catalog adapter.CatalogClient, cfg config.Workers, logger *logger.Logger) *Services {
	return &Services{
		JournalService: NewJournalService(storages.JournalRepository, storages, catalog, cfg, logger),
		CatalogService: NewCatalogService(catalog, logger),
	}
}
