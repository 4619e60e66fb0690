package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
)

// Router registers social HTTP routes
type Router struct {
	handler *Handler
	logger  zerolog.Logger
}

// NewRouter creates a new social router
func NewRouter(handler *Handler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers social routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	rt.POST("/api/follows/{userId}", r.handler.Follow)
	rt.DELETE("/api/follows/{userId}", r.handler.Unfollow)
	rt.POST("/api/blocks/{userId}", r.handler.Block)
	rt.DELETE("/api/blocks/{userId}", r.handler.Unblock)
}
