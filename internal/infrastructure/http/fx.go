package http

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/CodesofAkash/twitch-clone/config"
	categoryhttp "github.com/CodesofAkash/twitch-clone/internal/domain/category/delivery/http"
	discoveryhttp "github.com/CodesofAkash/twitch-clone/internal/domain/discovery/delivery/http"
	socialhttp "github.com/CodesofAkash/twitch-clone/internal/domain/social/delivery/http"
	taghttp "github.com/CodesofAkash/twitch-clone/internal/domain/tag/delivery/http"
	"github.com/CodesofAkash/twitch-clone/internal/infrastructure/http/server"
	"github.com/CodesofAkash/twitch-clone/internal/infrastructure/metrics"
)

// Module provides the HTTP server for fx DI
var Module = fx.Module("http",
	fx.Provide(NewServerFx),
	fx.Invoke(registerRoutes),
)

// NewServerFx creates the HTTP server with lifecycle hooks
func NewServerFx(
	lc fx.Lifecycle,
	serviceCfg *config.ServiceConfig,
	m *metrics.Metrics,
	reg *prometheus.Registry,
	logger zerolog.Logger,
) *server.Server {
	srv := server.NewServer(serviceCfg.Port, m, logger.With().Str("component", "http-server").Logger())

	srv.RegisterHealth(serviceCfg.Name)
	srv.RegisterMetrics(reg)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

func registerRoutes(
	srv *server.Server,
	discovery *discoveryhttp.Router,
	categories *categoryhttp.Router,
	tags *taghttp.Router,
	social *socialhttp.Router,
) {
	discovery.RegisterRoutes(srv.Router)
	categories.RegisterRoutes(srv.Router)
	tags.RegisterRoutes(srv.Router)
	social.RegisterRoutes(srv.Router)
}
