package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/journal-directory/internal/logger"
)

// refreshWorker periodically re-imports the directory from the upstream
// catalog using the configured term set.
type refreshWorker struct {
	refresher DirectoryRefresher
	interval  time.Duration

	logger *logger.Logger
}

func newRefreshWorker(refresher DirectoryRefresher, interval time.Duration, logger *logger.Logger) *refreshWorker {
	return &refreshWorker{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
	}
}

func (w *refreshWorker) Run(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("refresh worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("refresh worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *refreshWorker) refresh(ctx context.Context) {
	status, err := w.refresher.RefreshDatabase(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*refreshWorker.refresh").Msg("periodic refresh failed")
		return
	}

	w.logger.Info().
		Int("processed", status.Processed).
		Int("changed", status.Changed).
		Dur("took", status.Took).
		Msg("periodic refresh finished")
}
