package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/chosundeveloper/rollbook/internal/handler"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	log     *zap.Logger
}

func NewServer(h *handler.Handler, addr string, log *zap.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		handler: h,
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
		log: log,
	}
}

func (s *Server) Start() error {
	s.log.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
