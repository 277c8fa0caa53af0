package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/bagdasarian/freetime-finder/internal/config"
	"github.com/bagdasarian/freetime-finder/internal/handler"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	logger  *zap.Logger
}

func NewServer(h *handler.Handler, cfg config.HTTPConfig, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	var root http.Handler = mux
	if cfg.RateLimitRPS > 0 {
		root = NewRateLimiter(cfg, logger).Middleware(root)
	}
	root = RequestLogger(logger, root)

	return &Server{
		handler: h,
		logger:  logger,
		server: &http.Server{
			Addr:    cfg.Addr,
			Handler: root,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
