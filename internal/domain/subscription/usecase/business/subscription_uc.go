package business

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/internal/domain/access"
	"github.com/courseflow/course-service/internal/domain/subscription/deps"
	"github.com/courseflow/course-service/internal/domain/subscription/entities"
	suberrors "github.com/courseflow/course-service/internal/domain/subscription/errors"
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
)

type SubscriptionUseCase struct {
	subs    deps.SubscriptionRepository
	courses deps.CourseFinder
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewSubscriptionUseCase(
	subs deps.SubscriptionRepository,
	courses deps.CourseFinder,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		subs:    subs,
		courses: courses,
		metrics: m,
		logger:  logger,
	}
}

func (u *SubscriptionUseCase) Subscribe(ctx context.Context, actor access.Actor, courseID int64) (*entities.Subscription, error) {
	if !access.Allowed(actor, access.ActionCreate, access.ResourceSubscription, false) {
		return nil, pkgerrors.NewPermissionError("moderators may not subscribe to courses")
	}

	if courseID <= 0 {
		return nil, pkgerrors.NewValidationError("course_id is required")
	}

	exists, err := u.courses.Exists(ctx, courseID)
	if err != nil {
		u.logger.Error().Err(err).Int64("course_id", courseID).Msg("failed to check course existence")
		return nil, pkgerrors.NewInternalError("failed to check course existence")
	}
	if !exists {
		return nil, pkgerrors.NewNotFoundError("course not found")
	}

	sub := &entities.Subscription{
		UserID:   actor.ID,
		CourseID: courseID,
	}

	if err := u.subs.Create(ctx, sub); err != nil {
		if errors.Is(err, suberrors.ErrSubscriptionAlreadyExists) {
			return nil, pkgerrors.NewConflictError("you are already subscribed to this course")
		}
		u.logger.Error().Err(err).
			Int64("user_id", actor.ID).
			Int64("course_id", courseID).
			Msg("failed to create subscription")
		return nil, pkgerrors.NewInternalError("failed to create subscription")
	}

	u.metrics.SubscriptionsTotal.Inc()
	u.logger.Info().
		Int64("user_id", actor.ID).
		Int64("course_id", courseID).
		Msg("subscription created")

	return sub, nil
}

func (u *SubscriptionUseCase) Unsubscribe(ctx context.Context, actor access.Actor, courseID int64) error {
	if !access.Allowed(actor, access.ActionDestroy, access.ResourceSubscription, true) {
		return pkgerrors.NewPermissionError("moderators may not unsubscribe from courses")
	}

	if err := u.subs.DeleteByUserAndCourse(ctx, actor.ID, courseID); err != nil {
		if errors.Is(err, suberrors.ErrSubscriptionNotFound) {
			return pkgerrors.NewNotFoundError("subscription not found")
		}
		u.logger.Error().Err(err).
			Int64("user_id", actor.ID).
			Int64("course_id", courseID).
			Msg("failed to delete subscription")
		return pkgerrors.NewInternalError("failed to delete subscription")
	}

	u.metrics.UnsubscriptionsTotal.Inc()
	u.logger.Info().
		Int64("user_id", actor.ID).
		Int64("course_id", courseID).
		Msg("subscription removed")

	return nil
}
