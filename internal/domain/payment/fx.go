package payment

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	coursedeps "github.com/courseflow/course-service/internal/domain/course/deps"
	courseerrors "github.com/courseflow/course-service/internal/domain/course/errors"
	payhttp "github.com/courseflow/course-service/internal/domain/payment/delivery/http"
	"github.com/courseflow/course-service/internal/domain/payment/deps"
	"github.com/courseflow/course-service/internal/domain/payment/repository/postgres"
	"github.com/courseflow/course-service/internal/domain/payment/usecase/business"
	"github.com/courseflow/course-service/internal/infrastructure/http/server"
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
	"github.com/courseflow/course-service/internal/infrastructure/stripe"
	"github.com/courseflow/course-service/pkg/httputil"
)

var Module = fx.Module(
	"payment",
	fx.Provide(
		postgres.NewPaymentRepository,
		NewTargetFinder,
		NewPaymentUseCaseFx,
		payhttp.NewHandler,
		payhttp.NewRouter,
	),
	fx.Invoke(registerRoutes),
)

// NewTargetFinder answers existence checks for purchase targets using the
// course domain repositories.
func NewTargetFinder(
	courses coursedeps.CourseRepository,
	lessons coursedeps.LessonRepository,
) deps.TargetFinder {
	return targetFinder{courses: courses, lessons: lessons}
}

type targetFinder struct {
	courses coursedeps.CourseRepository
	lessons coursedeps.LessonRepository
}

func (f targetFinder) CourseExists(ctx context.Context, id int64) (bool, error) {
	return f.courses.Exists(ctx, id)
}

func (f targetFinder) LessonExists(ctx context.Context, id int64) (bool, error) {
	if _, err := f.lessons.GetByID(ctx, id); err != nil {
		if errors.Is(err, courseerrors.ErrLessonNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func NewPaymentUseCaseFx(
	payments deps.PaymentRepository,
	targets deps.TargetFinder,
	gateway stripe.Gateway,
	m *metrics.Metrics,
	logger zerolog.Logger,
) deps.PaymentUseCase {
	return business.NewPaymentUseCase(payments, targets, gateway, m, logger)
}

func registerRoutes(srv *server.Server, rt *payhttp.Router, auth httputil.Middleware) {
	rt.RegisterRoutes(srv.Router, auth)
}
