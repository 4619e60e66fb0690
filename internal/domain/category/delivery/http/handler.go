package http

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/CodesofAkash/twitch-clone/internal/domain/category/usecase/buissines"
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
	"github.com/CodesofAkash/twitch-clone/pkg/httputil"
)

const defaultStatsLimit = 10

// Handler handles category HTTP requests
type Handler struct {
	uc     *buissines.UseCase
	mapper *pkgerrors.Mapper
	logger zerolog.Logger
}

// NewHandler creates a new category handler
func NewHandler(uc *buissines.UseCase, mapper *pkgerrors.Mapper, logger zerolog.Logger) *Handler {
	return &Handler{
		uc:     uc,
		mapper: mapper,
		logger: logger,
	}
}

// List handles GET /api/categories
func (h *Handler) List(ctx *fasthttp.RequestCtx) {
	categories, err := h.uc.ListActive(ctx)
	if err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, categories)
}

// Stats handles GET /api/categories/stats
func (h *Handler) Stats(ctx *fasthttp.RequestCtx) {
	limit := defaultStatsLimit
	if raw := string(ctx.QueryArgs().Peek("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	stats, err := h.uc.ListWithStats(ctx, limit)
	if err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, stats)
}

// Search handles GET /api/categories/search
func (h *Handler) Search(ctx *fasthttp.RequestCtx) {
	query := string(ctx.QueryArgs().Peek("q"))

	categories, err := h.uc.Search(ctx, query)
	if err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, categories)
}

// GetBySlug handles GET /api/categories/{slug}
func (h *Handler) GetBySlug(ctx *fasthttp.RequestCtx) {
	slug, _ := ctx.UserValue("slug").(string)

	category, err := h.uc.GetBySlug(ctx, slug)
	if err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, category)
}
