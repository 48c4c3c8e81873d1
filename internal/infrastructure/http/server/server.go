package server

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Server represents fasthttp server
type Server struct {
	server  *fasthttp.Server
	Router  *router.Router
	addr    string
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewServer creates a new fasthttp server
func NewServer(name, port string, m *metrics.Metrics, logger zerolog.Logger) *Server {
	r := router.New()

	s := &Server{
		Router:  r,
		addr:    fmt.Sprintf(":%s", port),
		logger:  logger,
		metrics: m,
	}

	s.server = &fasthttp.Server{
		Handler:      s.instrument(r.Handler),
		Name:         name,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Handler returns the instrumented root handler
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.server.Handler
}

// RegisterMetrics registers Prometheus metrics endpoint
func (s *Server) RegisterMetrics() {
	s.Router.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))
}

func (s *Server) instrument(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		next(ctx)

		if s.metrics == nil {
			return
		}
		method := string(ctx.Method())
		s.metrics.HTTPRequests.WithLabelValues(method, strconv.Itoa(ctx.Response.StatusCode())).Inc()
		s.metrics.HTTPRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}
}

// Start starts the HTTP server in a separate goroutine
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.addr).
		Msg("Starting HTTP server")

	go func() {
		if err := s.server.ListenAndServe(s.addr); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down HTTP server")

	if err := s.server.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info().Msg("HTTP server stopped gracefully")
	return nil
}
