package tag

import (
	"go.uber.org/fx"

	taghttp "github.com/CodesofAkash/twitch-clone/internal/domain/tag/delivery/http"
	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/repository/postgres"
	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/usecase/buissines"
)

// Module provides tag domain dependencies
var Module = fx.Module(
	"tag",
	fx.Provide(
		postgres.NewTagRepository,
		buissines.NewUseCase,
		taghttp.NewHandler,
		taghttp.NewRouter,
	),
)
