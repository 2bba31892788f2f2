package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/pkg/httputil"
)

type Router struct {
	handler *Handler
	logger  zerolog.Logger
}

func NewRouter(handler *Handler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers subscription routes behind the auth middleware
func (r *Router) RegisterRoutes(rt *router.Router, auth httputil.Middleware) {
	courses := httputil.NewMiddlewareGroup(rt.Group("/courses")).Use(auth)
	courses.POST("/subscribe/", r.handler.Subscribe)
	courses.DELETE("/{id}/unsubscribe/", r.handler.Unsubscribe)
}
