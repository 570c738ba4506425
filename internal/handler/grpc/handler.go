// Package grpc implements the gRPC transport layer of the application.
//
// The directory exposes a single gRPC surface: the standard health service
// (grpc.health.v1.Health). External orchestrators probe it to learn whether
// the directory has finished its startup initialization.
package grpc

import (
	"context"

	"github.com/MKhiriev/journal-directory/internal/logger"
	"github.com/MKhiriev/journal-directory/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler.
//
// It implements grpc_health_v1.HealthServer on top of the service layer's
// readiness flag. A handler instance is created once at startup and shared
// by the gRPC server.
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check reports SERVING once the directory has completed its one-time
// startup initialization and NOT_SERVING before that.
func (h *Handler) Check(_ context.Context, _ *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	return &grpc_health_v1.HealthCheckResponse{Status: h.servingStatus()}, nil
}

// Watch sends the current serving status once and keeps the stream open
// until the client goes away. Status transitions are not pushed; clients
// needing fresh data should poll Check.
func (h *Handler) Watch(_ *grpc_health_v1.HealthCheckRequest, stream grpc_health_v1.Health_WatchServer) error {
	if err := stream.Send(&grpc_health_v1.HealthCheckResponse{Status: h.servingStatus()}); err != nil {
		return status.Errorf(codes.Canceled, "health watch stream closed: %v", err)
	}

	<-stream.Context().Done()
	return stream.Context().Err()
}

func (h *Handler) servingStatus() grpc_health_v1.HealthCheckResponse_ServingStatus {
	if h.services != nil && h.services.JournalService != nil && h.services.JournalService.Ready() {
		return grpc_health_v1.HealthCheckResponse_SERVING
	}
	return grpc_health_v1.HealthCheckResponse_NOT_SERVING
}
