package app

import (
	"go.uber.org/fx"

	"github.com/CodesofAkash/twitch-clone/config"
	"github.com/CodesofAkash/twitch-clone/internal/domain"
	"github.com/CodesofAkash/twitch-clone/internal/infrastructure/cache"
	"github.com/CodesofAkash/twitch-clone/internal/infrastructure/database"
	"github.com/CodesofAkash/twitch-clone/internal/infrastructure/http"
	"github.com/CodesofAkash/twitch-clone/internal/infrastructure/kafka"
	"github.com/CodesofAkash/twitch-clone/internal/infrastructure/logger"
	"github.com/CodesofAkash/twitch-clone/internal/infrastructure/metrics"
)

// CreateApp creates the fx application with all dependencies
func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(config.Out),
		fx.Provide(logger.NewLogger),
		fx.Provide(database.NewPostgresDB),
		metrics.Module,
		cache.Module,
		domain.Module,
		http.Module,
		kafka.Module,
	)
}
