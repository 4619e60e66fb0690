package category

import (
	"go.uber.org/fx"

	categoryhttp "github.com/CodesofAkash/twitch-clone/internal/domain/category/delivery/http"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/repository/postgres"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/usecase/buissines"
)

// Module provides category domain dependencies
var Module = fx.Module(
	"category",
	fx.Provide(
		postgres.NewCategoryRepository,
		buissines.NewUseCase,
		categoryhttp.NewHandler,
		categoryhttp.NewRouter,
	),
)
