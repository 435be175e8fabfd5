// Package stub provides a local fake of the API Gateway method-response and
// Route 53 record-set APIs. It speaks the same wire formats as the real
// services, so the awsrest clients can target it by endpoint override.
package stub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/awsrest/internal/config"
	"github.com/jroosing/awsrest/internal/stub/handlers"
	"github.com/jroosing/awsrest/internal/stub/middleware"
	"github.com/jroosing/awsrest/internal/stub/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 5 * time.Second

// Server is the stub HTTP server.
//
// Security note: the stub has no SigV4 verification. Bind it to loopback or
// set stub.api_key.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

func New(cfg *config.Config, st *store.Store, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("stub.New: cfg is nil")
	}
	if st == nil {
		panic("stub.New: store is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	// Route on the escaped path so an encoded "/" stays inside its segment.
	engine.UseRawPath = true
	engine.UnescapePathValues = true
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.SlogRequestLogger(logger))
	engine.Use(metrics.Instrument())

	h := handlers.New(st, logger)
	RegisterRoutes(engine, h, reg, cfg.Stub.APIKey)

	httpServer := &http.Server{
		Addr:              cfg.StubAddr(),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("stub listening", "addr", s.Addr())
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Run serves until ctx is canceled or the listener fails, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.ListenAndServe() }()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("stub stopped")
	return nil
}
