package httputil

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// viewerHeader carries the opaque viewer id set by the identity layer.
// An absent or empty header means an anonymous viewer.
const viewerHeader = "X-Viewer-Id"

// ViewerID extracts the current viewer's opaque id from the request.
func ViewerID(ctx *fasthttp.RequestCtx) string {
	return string(ctx.Request.Header.Peek(viewerHeader))
}

// WithLogging wraps a handler with request logging
func WithLogging(handler fasthttp.RequestHandler, logger zerolog.Logger) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()

		handler(ctx)

		logger.Debug().
			Str("method", string(ctx.Method())).
			Str("path", string(ctx.Path())).
			Int("status", ctx.Response.StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}
