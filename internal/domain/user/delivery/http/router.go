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

// RegisterRoutes registers user routes behind the auth middleware
func (r *Router) RegisterRoutes(rt *router.Router, auth httputil.Middleware) {
	users := httputil.NewMiddlewareGroup(rt.Group("/users")).Use(auth)
	users.GET("/{id}/", r.handler.GetUser)
}
