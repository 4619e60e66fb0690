package discovery

import (
	"go.uber.org/fx"

	catuc "github.com/CodesofAkash/twitch-clone/internal/domain/category/usecase/buissines"
	discoveryhttp "github.com/CodesofAkash/twitch-clone/internal/domain/discovery/delivery/http"
	discoverykafka "github.com/CodesofAkash/twitch-clone/internal/domain/discovery/delivery/kafka"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/deps"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/repository/postgres"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/usecase/buissines"
	taguc "github.com/CodesofAkash/twitch-clone/internal/domain/tag/usecase/buissines"
)

// Module provides discovery domain dependencies. The category and tag
// registries are wired in through their use cases.
var Module = fx.Module(
	"discovery",
	fx.Provide(
		postgres.NewStreamRepository,
		postgres.NewUserRepository,
		func(uc *catuc.UseCase) deps.CategoryResolver { return uc },
		func(uc *taguc.UseCase) deps.TagReplacer { return uc },
		buissines.NewUseCase,
		discoveryhttp.NewHandler,
		discoveryhttp.NewRouter,
		discoverykafka.NewHandlers,
	),
)
