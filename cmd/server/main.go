package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/journal-directory/internal/adapter"
	"github.com/MKhiriev/journal-directory/internal/config"
	"github.com/MKhiriev/journal-directory/internal/handler"
	"github.com/MKhiriev/journal-directory/internal/logger"
	"github.com/MKhiriev/journal-directory/internal/server"
	"github.com/MKhiriev/journal-directory/internal/service"
	"github.com/MKhiriev/journal-directory/internal/store"
	"github.com/MKhiriev/journal-directory/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("journal-directory-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	catalog := adapter.NewNLMCatalogClient(cfg.Catalog, log)

	services := service.NewServices(storages, catalog, cfg.Workers, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// migrations and warmup run in the background; the readiness gate
	// rejects API requests until they finish
	go func() {
		if initErr := services.JournalService.Initialize(log.WithContext(ctx)); initErr != nil {
			log.Error().Err(initErr).Msg("directory initialization failed")
		}
	}()

	workers.NewWorkers(services.JournalService, cfg.Workers, log).Run(ctx)

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
