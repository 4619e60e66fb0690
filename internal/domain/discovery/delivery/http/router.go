package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
)

// Router registers discovery HTTP routes
type Router struct {
	handler *Handler
	logger  zerolog.Logger
}

// NewRouter creates a new discovery router
func NewRouter(handler *Handler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers discovery routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	rt.GET("/api/search", r.handler.Search)
	rt.GET("/api/feed", r.handler.Feed)
	rt.GET("/api/recommended", r.handler.Recommended)
	rt.PUT("/api/streams/category", r.handler.SetCategory)
	rt.PUT("/api/streams/tags", r.handler.SetTags)
}
