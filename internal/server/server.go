package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"logdeck/internal/config"
	"logdeck/internal/logging"
	"logdeck/internal/logs"
	"logdeck/internal/store"
)

// Server serves the logdeck HTTP API.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	catalog *store.Store
	reader  *logs.Reader
	metrics *metrics

	listener net.Listener
	server   *http.Server
}

// New constructs a Server bound to the configured address.
func New(cfg *config.Config, catalog *store.Store, logger *slog.Logger) (*Server, error) {
	if cfg == nil || catalog == nil {
		return nil, errors.New("server requires config and catalog store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	srv := &Server{
		cfg:     cfg,
		logger:  logging.WithComponent(logger, "api-server"),
		catalog: catalog,
		reader:  logs.NewReader(logger),
		metrics: newMetrics(),
	}

	token := cfg.Paths.APIToken
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", srv.instrument("health", srv.handleHealth))
	mux.HandleFunc("/api/supervisors", authMiddleware(token, srv.instrument("supervisors", srv.handleSupervisors)))
	mux.HandleFunc("/api/supervisors/", authMiddleware(token, srv.instrument("supervisor_logs", srv.handleSupervisorSubtree)))
	mux.Handle("/metrics", promhttp.Handler())

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Start begins serving and arranges shutdown when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Paths.APIBind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.Info("api server listening", slog.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// Addr returns the bound address, empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Handler exposes the route tree for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
