package social

import (
	"go.uber.org/fx"

	socialhttp "github.com/CodesofAkash/twitch-clone/internal/domain/social/delivery/http"
	"github.com/CodesofAkash/twitch-clone/internal/domain/social/repository/postgres"
	"github.com/CodesofAkash/twitch-clone/internal/domain/social/usecase/buissines"
)

// Module provides social domain dependencies
var Module = fx.Module(
	"social",
	fx.Provide(
		postgres.NewSocialRepository,
		buissines.NewUseCase,
		socialhttp.NewHandler,
		socialhttp.NewRouter,
	),
)
