package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-voice-keeper/internal/config"
	"github.com/MKhiriev/go-voice-keeper/internal/handler"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	jobs       BackgroundJobs
	logger     *logger.Logger
}

// NewServer builds the HTTP server. jobs may be nil.
func NewServer(handlers *handler.Handlers, jobs BackgroundJobs, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		jobs:       jobs,
		logger:     logger,
	}, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives and the server
// has shut down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run(ctx context.Context) {
	jobsCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()

	if s.jobs != nil {
		s.logger.Info().Msg("Launching background workers")
		s.jobs.Run(jobsCtx)
	}

	serverStopped := make(chan struct{})
	go func() {
		defer close(serverStopped)
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-serverStopped
	case <-serverStopped:
	}

	// in-flight jobs see a cancelled context and record themselves as failed
	cancelJobs()
	if s.jobs != nil {
		s.jobs.Wait()
	}

	s.logger.Info().Msg("server Shutdown gracefully")
}
