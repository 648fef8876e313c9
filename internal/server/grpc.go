package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-plot-style/internal/config"
	"github.com/MKhiriev/go-plot-style/internal/logger"
)

// healthService is the service name reported next to the overall "" status.
const healthService = "styles"

// grpcServer exposes the standard gRPC health service so orchestrators can
// check the daemon without speaking HTTP.
type grpcServer struct {
	address string
	server  *grpc.Server
	health  *health.Server
	listen  func(network, address string) (net.Listener, error)

	logger *logger.Logger
}

func newGRPCServer(cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  srv,
		health:  hs,
		listen:  net.Listen,
		logger:  logger,
	}
}

// Run serves health checks until ctx is done. Statuses flip to NOT_SERVING
// before the listener stops.
func (g *grpcServer) Run(ctx context.Context) error {
	ln, err := g.listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", g.address, err)
	}
	g.logger.Info().Str("address", ln.Addr().String()).Msg("gRPC server listening")

	g.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	g.health.SetServingStatus(healthService, healthpb.HealthCheckResponse_SERVING)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- g.server.Serve(ln)
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			return fmt.Errorf("gRPC server Serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	g.logger.Info().Msg("gRPC server Shutdown")
	g.health.Shutdown()
	g.server.GracefulStop()
	return nil
}
