package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/pkg/httputil"
)

// Router registers course and lesson HTTP routes
type Router struct {
	handler *Handler
	logger  zerolog.Logger
}

// NewRouter creates a new course router
func NewRouter(handler *Handler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers course routes behind the auth middleware
func (r *Router) RegisterRoutes(rt *router.Router, auth httputil.Middleware) {
	courses := httputil.NewMiddlewareGroup(rt.Group("/courses")).Use(auth)
	courses.GET("/", r.handler.ListCourses)
	courses.POST("/", r.handler.CreateCourse)
	courses.GET("/{id}/", r.handler.GetCourse)
	courses.PATCH("/{id}/", r.handler.UpdateCourse)
	courses.DELETE("/{id}/", r.handler.DeleteCourse)

	lessons := httputil.NewMiddlewareGroup(rt.Group("/lesson")).Use(auth)
	lessons.GET("/", r.handler.ListLessons)
	lessons.POST("/create/", r.handler.CreateLesson)
	lessons.GET("/{id}/", r.handler.GetLesson)
	lessons.PATCH("/{id}/update/", r.handler.UpdateLesson)
	lessons.DELETE("/{id}/delete/", r.handler.DeleteLesson)
}
