// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/journal-directory/models"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block until ctx is cancelled or spawn
// goroutines internally.
type Worker interface {
	Run(ctx context.Context)
}

// DirectoryRefresher is the slice of the service layer the refresh worker
// depends on.
type DirectoryRefresher interface {
	RefreshDatabase(ctx context.Context, terms ...string) (models.OperationStatus, error)
}
