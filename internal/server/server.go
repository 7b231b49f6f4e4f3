package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/expenselab/expense-keeper/internal/config"
	"github.com/expenselab/expense-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wraps the given handler in an HTTP server bound to the
// configured address.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) Server {
	logger.Info().Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}
}

// RunServer launches the HTTP server and blocks until a termination signal
// (SIGTERM, SIGINT, SIGQUIT) triggers a graceful shutdown.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
