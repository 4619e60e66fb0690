package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
)

// Router registers tag HTTP routes
type Router struct {
	handler *Handler
	logger  zerolog.Logger
}

// NewRouter creates a new tag router
func NewRouter(handler *Handler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers tag routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	rt.GET("/api/tags", r.handler.List)
	rt.GET("/api/tags/popular", r.handler.Popular)
	rt.GET("/api/tags/search", r.handler.Search)
}
