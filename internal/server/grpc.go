package server

import (
	"net"

	"github.com/MKhiriev/journal-directory/internal/config"
	myGRPC "github.com/MKhiriev/journal-directory/internal/handler/grpc"
	"github.com/MKhiriev/journal-directory/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server      *grpc.Server
	grpcAddress string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(server, handler)

	return &grpcServer{
		handler:     handler,
		server:      server,
		grpcAddress: cfg.GRPCAddress,
		logger:      logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.grpcAddress)
	if err != nil {
		g.logger.Error().Msgf("gRPC server Listen: %v", err)
		return
	}

	if err := g.server.Serve(listener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v", err)
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}
