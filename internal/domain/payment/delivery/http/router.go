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

// RegisterRoutes registers payment routes behind the auth middleware
func (r *Router) RegisterRoutes(rt *router.Router, auth httputil.Middleware) {
	payments := httputil.NewMiddlewareGroup(rt.Group("/payments")).Use(auth)
	payments.GET("/", r.handler.ListPayments)
	payments.POST("/", r.handler.CreatePayment)
	payments.GET("/{id}/status/", r.handler.GetStatus)
}
