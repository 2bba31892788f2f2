package course

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/courseflow/course-service/config"
	coursehttp "github.com/courseflow/course-service/internal/domain/course/delivery/http"
	"github.com/courseflow/course-service/internal/domain/course/deps"
	"github.com/courseflow/course-service/internal/domain/course/repository/postgres"
	"github.com/courseflow/course-service/internal/domain/course/usecase/business"
	"github.com/courseflow/course-service/internal/domain/notification"
	"github.com/courseflow/course-service/internal/infrastructure/http/server"
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
	"github.com/courseflow/course-service/pkg/httputil"
)

var Module = fx.Module(
	"course",
	fx.Provide(
		postgres.NewCourseRepository,
		postgres.NewLessonRepository,
		NewUpdateNotifier,
		NewUpdatePolicy,
		NewCourseUseCaseFx,
		NewLessonUseCaseFx,
		coursehttp.NewHandler,
		coursehttp.NewRouter,
	),
	fx.Invoke(registerRoutes),
)

// NewUpdateNotifier exposes the notification dispatcher to the course
// usecases behind their own dependency interface.
func NewUpdateNotifier(dispatcher *notification.Dispatcher) deps.UpdateNotifier {
	return dispatcher
}

func NewUpdatePolicy(debouncer *notification.Debouncer) deps.UpdatePolicy {
	return debouncer
}

func NewCourseUseCaseFx(
	courses deps.CourseRepository,
	subs deps.SubscriptionChecker,
	notifier deps.UpdateNotifier,
	policy deps.UpdatePolicy,
	logger zerolog.Logger,
) deps.CourseUseCase {
	return business.NewCourseUseCase(courses, subs, notifier, policy, logger)
}

func NewLessonUseCaseFx(
	lessons deps.LessonRepository,
	courses deps.CourseRepository,
	notifier deps.UpdateNotifier,
	policy deps.UpdatePolicy,
	serviceCfg *config.ServiceConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) deps.LessonUseCase {
	return business.NewLessonUseCase(lessons, courses, notifier, policy, serviceCfg.AllowedVideoHosts, m, logger)
}

func registerRoutes(srv *server.Server, rt *coursehttp.Router, auth httputil.Middleware) {
	rt.RegisterRoutes(srv.Router, auth)
}
