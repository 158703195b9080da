package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/akgarhwal/vault/internal/config"
	"github.com/akgarhwal/vault/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer binds cfg.Address and returns a server for handler. The port
// is taken at once, so a busy address fails here rather than in Run.
func NewServer(handler http.Handler, cfg config.Mirror, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandler
	}
	if cfg.Address == "" {
		return nil, errNoAddress
	}

	logger.Info().Str("address", cfg.Address).Msg("creating mirror server...")
	httpServer, err := newHTTPServer(handler, cfg.Address)
	if err != nil {
		return nil, err
	}

	return &server{httpServer: httpServer, logger: logger}, nil
}

func (s *server) Addr() string {
	return s.httpServer.listener.Addr().String()
}

func (s *server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.Addr()).Msg("launching mirror server")
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("mirror server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	if err := s.httpServer.Shutdown(); err != nil {
		s.logger.Err(err).Msg("mirror server shutdown")
	}
	<-serveErr
	s.logger.Info().Msg("mirror server shut down gracefully")
	return nil
}
