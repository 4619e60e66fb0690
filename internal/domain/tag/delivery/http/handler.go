package http

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/usecase/buissines"
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
	"github.com/CodesofAkash/twitch-clone/pkg/httputil"
)

// Handler handles tag HTTP requests
type Handler struct {
	uc     *buissines.UseCase
	mapper *pkgerrors.Mapper
	logger zerolog.Logger
}

// NewHandler creates a new tag handler
func NewHandler(uc *buissines.UseCase, mapper *pkgerrors.Mapper, logger zerolog.Logger) *Handler {
	return &Handler{
		uc:     uc,
		mapper: mapper,
		logger: logger,
	}
}

// List handles GET /api/tags
func (h *Handler) List(ctx *fasthttp.RequestCtx) {
	tags, err := h.uc.ListAll(ctx)
	if err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, tags)
}

// Popular handles GET /api/tags/popular
func (h *Handler) Popular(ctx *fasthttp.RequestCtx) {
	limit := 0
	if raw := string(ctx.QueryArgs().Peek("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	tags, err := h.uc.Popular(ctx, limit)
	if err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, tags)
}

// Search handles GET /api/tags/search
func (h *Handler) Search(ctx *fasthttp.RequestCtx) {
	query := string(ctx.QueryArgs().Peek("q"))

	tags, err := h.uc.Search(ctx, query)
	if err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, tags)
}
