package workers

import (
	"context"

	"github.com/MKhiriev/journal-directory/internal/config"
	"github.com/MKhiriev/journal-directory/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by the configuration.
// A zero RefreshInterval disables the periodic refresh.
func NewWorkers(refresher DirectoryRefresher, cfg config.Workers, logger *logger.Logger) *Workers {
	workers := &Workers{}

	if cfg.RefreshInterval > 0 {
		workers.workers = append(workers.workers, newRefreshWorker(refresher, cfg.RefreshInterval, logger))
	}

	return workers
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
