package http

import (
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	catdto "github.com/CodesofAkash/twitch-clone/internal/domain/category/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/ranking"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/usecase/buissines"
	tagdto "github.com/CodesofAkash/twitch-clone/internal/domain/tag/dto"
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
	"github.com/CodesofAkash/twitch-clone/pkg/httputil"
)

// Handler handles discovery HTTP requests
type Handler struct {
	uc     *buissines.UseCase
	mapper *pkgerrors.Mapper
	logger zerolog.Logger
}

// NewHandler creates a new discovery handler
func NewHandler(uc *buissines.UseCase, mapper *pkgerrors.Mapper, logger zerolog.Logger) *Handler {
	return &Handler{
		uc:     uc,
		mapper: mapper,
		logger: logger,
	}
}

func filtersFromQuery(ctx *fasthttp.RequestCtx) dto.SearchFilters {
	args := ctx.QueryArgs()
	return dto.SearchFilters{
		Term:         string(args.Peek("term")),
		CategorySlug: string(args.Peek("category")),
		TagSlug:      string(args.Peek("tag")),
		LiveOnly:     args.GetBool("live"),
		SortBy:       ranking.Normalize(ranking.SortKey(args.Peek("sort"))),
	}
}

// Search handles GET /api/search
func (h *Handler) Search(ctx *fasthttp.RequestCtx) {
	viewerID := httputil.ViewerID(ctx)

	streams, err := h.uc.Search(ctx, viewerID, filtersFromQuery(ctx))
	if err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, streams)
}

// Feed handles GET /api/feed
func (h *Handler) Feed(ctx *fasthttp.RequestCtx) {
	viewerID := httputil.ViewerID(ctx)

	streams, err := h.uc.Feed(ctx, viewerID)
	if err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, streams)
}

// Recommended handles GET /api/recommended
func (h *Handler) Recommended(ctx *fasthttp.RequestCtx) {
	viewerID := httputil.ViewerID(ctx)

	users, err := h.uc.Recommended(ctx, viewerID)
	if err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, users)
}

// SetCategory handles PUT /api/streams/category
func (h *Handler) SetCategory(ctx *fasthttp.RequestCtx) {
	viewerID := httputil.ViewerID(ctx)

	var req dto.SetCategoryRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		httputil.WriteError(ctx, h.mapper, pkgerrors.NewValidationError("invalid request body"))
		return
	}

	ref := catdto.CategoryRef{}
	if req.Category != "" {
		if req.ByName {
			ref = catdto.ByName(req.Category)
		} else {
			ref = catdto.ByID(req.Category)
		}
	}

	if err := h.uc.SetCategory(ctx, viewerID, ref); err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, map[string]string{"status": "updated"})
}

// SetTags handles PUT /api/streams/tags
func (h *Handler) SetTags(ctx *fasthttp.RequestCtx) {
	viewerID := httputil.ViewerID(ctx)

	var req tagdto.ReplaceTagsRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		httputil.WriteError(ctx, h.mapper, pkgerrors.NewValidationError("invalid request body"))
		return
	}

	if err := h.uc.SetTags(ctx, viewerID, req.Tags); err != nil {
		httputil.WriteError(ctx, h.mapper, err)
		return
	}

	httputil.WriteResponse(ctx, map[string]string{"status": "updated"})
}
