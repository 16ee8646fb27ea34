package httpserver

import (
	"context"
	"net/http"
	"time"
)

type Server struct {
	addr   string
	Server *http.Server
}

func New(addr string, handler http.Handler) *Server {
	return &Server{
		addr: addr,
		Server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	err := s.Server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = s.Server.Shutdown(ctx)
}
