package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
)

// Router registers category HTTP routes
type Router struct {
	handler *Handler
	logger  zerolog.Logger
}

// NewRouter creates a new category router
func NewRouter(handler *Handler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers category routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	rt.GET("/api/categories", r.handler.List)
	rt.GET("/api/categories/stats", r.handler.Stats)
	rt.GET("/api/categories/search", r.handler.Search)
	rt.GET("/api/categories/{slug}", r.handler.GetBySlug)
}
