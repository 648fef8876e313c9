package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-plot-style/internal/config"
	"github.com/MKhiriev/go-plot-style/internal/handler"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/workers"
)

type server struct {
	httpServer *httpServer
	grpcServer *grpcServer
	background []workers.Worker
	logger     *logger.Logger
}

// NewServer builds the HTTP server over handlers, plus a gRPC health server
// when cfg.GRPCAddress is set. background workers run alongside them and
// share their lifetime.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, background ...workers.Worker) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	s := &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		background: background,
		logger:     logger,
	}
	if cfg.GRPCAddress != "" {
		s.grpcServer = newGRPCServer(cfg, logger)
	}
	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	group := workers.New(s.httpServer)
	if s.grpcServer != nil {
		group.Add(s.grpcServer)
	}
	for _, w := range s.background {
		group.Add(w)
	}

	s.logger.Info().Int("workers", group.Len()).Msg("launching server")
	if err := group.Run(ctx); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
