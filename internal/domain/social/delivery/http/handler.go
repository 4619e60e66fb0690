package http

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/CodesofAkash/twitch-clone/internal/domain/social/usecase/buissines"
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
	"github.com/CodesofAkash/twitch-clone/pkg/httputil"
)

// Handler handles follow and block HTTP requests
type Handler struct {
	uc     *buissines.UseCase
	mapper *pkgerrors.Mapper
	logger zerolog.Logger
}

// NewHandler creates a new social handler
func NewHandler(uc *buissines.UseCase, mapper *pkgerrors.Mapper, logger zerolog.Logger) *Handler {
	return &Handler{
		uc:     uc,
		mapper: mapper,
		logger: logger,
	}
}

func targetID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue("userId").(string)
	return id
}

// Follow handles POST /api/follows/{userId}
func (h *Handler) Follow(ctx *fasthttp.RequestCtx) {
	if err := h.uc.Follow(ctx, httputil.ViewerID(ctx), targetID(ctx)); err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponseWithStatus(ctx, map[string]string{"status": "following"}, fasthttp.StatusCreated)
}

// Unfollow handles DELETE /api/follows/{userId}
func (h *Handler) Unfollow(ctx *fasthttp.RequestCtx) {
	if err := h.uc.Unfollow(ctx, httputil.ViewerID(ctx), targetID(ctx)); err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, map[string]string{"status": "unfollowed"})
}

// Block handles POST /api/blocks/{userId}
func (h *Handler) Block(ctx *fasthttp.RequestCtx) {
	if err := h.uc.Block(ctx, httputil.ViewerID(ctx), targetID(ctx)); err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponseWithStatus(ctx, map[string]string{"status": "blocked"}, fasthttp.StatusCreated)
}

// Unblock handles DELETE /api/blocks/{userId}
func (h *Handler) Unblock(ctx *fasthttp.RequestCtx) {
	if err := h.uc.Unblock(ctx, httputil.ViewerID(ctx), targetID(ctx)); err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, map[string]string{"status": "unblocked"})
}
