package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/edsc-portals/internal/config"
	"github.com/MKhiriev/edsc-portals/internal/handler"
	"github.com/MKhiriev/edsc-portals/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(context.Background()); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until parent is cancelled or a stop signal arrives, then shuts
// the server down gracefully.
func (s *server) run(parent context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	served := make(chan struct{})
	go func() {
		s.httpServer.RunServer()
		close(served)
	}()

	select {
	case <-ctx.Done():
	case <-served:
		// listener failed before any signal, nothing left to wait for
	}

	s.Shutdown()
	<-served
	s.logger.Info().Msg("server shut down gracefully")

	return nil
}
