package subscription

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	coursedeps "github.com/courseflow/course-service/internal/domain/course/deps"
	notifdeps "github.com/courseflow/course-service/internal/domain/notification/deps"
	subhttp "github.com/courseflow/course-service/internal/domain/subscription/delivery/http"
	"github.com/courseflow/course-service/internal/domain/subscription/deps"
	"github.com/courseflow/course-service/internal/domain/subscription/repository/postgres"
	"github.com/courseflow/course-service/internal/domain/subscription/usecase/business"
	"github.com/courseflow/course-service/internal/infrastructure/http/server"
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
	"github.com/courseflow/course-service/pkg/httputil"
)

var Module = fx.Module(
	"subscription",
	fx.Provide(
		postgres.NewSubscriptionRepository,
		NewCourseFinder,
		NewSubscriptionChecker,
		NewSubscriberSource,
		NewSubscriptionUseCaseFx,
		subhttp.NewHandler,
		subhttp.NewRouter,
	),
	fx.Invoke(registerRoutes),
)

// NewCourseFinder narrows the course repository to the existence check
// the subscription usecase needs.
func NewCourseFinder(courses coursedeps.CourseRepository) deps.CourseFinder {
	return courses
}

// NewSubscriptionChecker exposes the repository to the course domain.
func NewSubscriptionChecker(repo deps.SubscriptionRepository) coursedeps.SubscriptionChecker {
	return subscriptionChecker{repo: repo}
}

type subscriptionChecker struct {
	repo deps.SubscriptionRepository
}

func (c subscriptionChecker) IsSubscribed(ctx context.Context, userID, courseID int64) (bool, error) {
	return c.repo.Exists(ctx, userID, courseID)
}

// NewSubscriberSource exposes the repository to the notification domain.
func NewSubscriberSource(repo deps.SubscriptionRepository) notifdeps.SubscriberSource {
	return repo
}

func NewSubscriptionUseCaseFx(
	subs deps.SubscriptionRepository,
	courses deps.CourseFinder,
	m *metrics.Metrics,
	logger zerolog.Logger,
) deps.SubscriptionUseCase {
	return business.NewSubscriptionUseCase(subs, courses, m, logger)
}

func registerRoutes(srv *server.Server, rt *subhttp.Router, auth httputil.Middleware) {
	rt.RegisterRoutes(srv.Router, auth)
}
