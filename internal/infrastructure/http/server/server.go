package server

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/CodesofAkash/twitch-clone/internal/infrastructure/metrics"
	"github.com/CodesofAkash/twitch-clone/pkg/httputil"
)

// Server represents fasthttp server
type Server struct {
	server *fasthttp.Server
	Router *router.Router
	addr   string
	logger zerolog.Logger
}

// NewServer creates a new fasthttp server
func NewServer(port string, m *metrics.Metrics, logger zerolog.Logger) *Server {
	r := router.New()

	handler := withMetrics(r.Handler, m)
	handler = httputil.WithLogging(handler, logger)

	srv := &fasthttp.Server{
		Handler:      handler,
		Name:         "discovery-service",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		server: srv,
		Router: r,
		addr:   fmt.Sprintf(":%s", port),
		logger: logger,
	}
}

// withMetrics observes every handled request
func withMetrics(handler fasthttp.RequestHandler, m *metrics.Metrics) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()

		handler(ctx)

		m.RecordHTTPRequest(
			string(ctx.Method()),
			string(ctx.Path()),
			strconv.Itoa(ctx.Response.StatusCode()),
			time.Since(start).Seconds(),
		)
	}
}

// RegisterMetrics registers the Prometheus metrics endpoint
func (s *Server) RegisterMetrics(reg *prometheus.Registry) {
	prometheusHandler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)
	s.Router.GET("/metrics", prometheusHandler)
}

// RegisterHealth registers the health endpoint
func (s *Server) RegisterHealth(serviceName string) {
	s.Router.GET("/health", func(ctx *fasthttp.RequestCtx) {
		httputil.WriteResponse(ctx, map[string]string{
			"status":  "ok",
			"service": serviceName,
		})
	})
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

	if err := s.server.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info().Msg("HTTP server stopped gracefully")
	return nil
}
