package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/disk2iso/disk2iso-web/src/internal/log"
)

// Server represents the API server
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new API server
func NewServer(bindAddr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              bindAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			// A write waits for the config store and then for a restart.
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Serve accepts connections on l until Shutdown is called.
// It returns nil after a graceful shutdown.
func (s *Server) Serve(l net.Listener) error {
	log.Infof("API server listening on http://%s", l.Addr())
	if err := s.httpServer.Serve(l); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ListenAndServe listens on the configured address and serves.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Shutdown stops accepting connections and waits for in-flight requests,
// closing forcibly if ctx ends first.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
		if closeErr := s.httpServer.Close(); closeErr != nil {
			return closeErr
		}
		return err
	}
	log.Infof("Server stopped gracefully")
	return nil
}
