package domain

import (
	"go.uber.org/fx"

	"github.com/CodesofAkash/twitch-clone/internal/domain/category"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery"
	"github.com/CodesofAkash/twitch-clone/internal/domain/social"
	"github.com/CodesofAkash/twitch-clone/internal/domain/tag"
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
)

// Module aggregates all domain modules
var Module = fx.Module(
	"domain",
	fx.Provide(pkgerrors.NewMapper),
	category.Module,
	tag.Module,
	discovery.Module,
	social.Module,
)
