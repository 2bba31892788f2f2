package business

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/internal/domain/access"
	"github.com/courseflow/course-service/internal/domain/course/deps"
	"github.com/courseflow/course-service/internal/domain/course/dto"
	"github.com/courseflow/course-service/internal/domain/course/entities"
	courseerrors "github.com/courseflow/course-service/internal/domain/course/errors"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
)

type CourseUseCase struct {
	courses  deps.CourseRepository
	subs     deps.SubscriptionChecker
	notifier deps.UpdateNotifier
	policy   deps.UpdatePolicy
	logger   zerolog.Logger
}

func NewCourseUseCase(
	courses deps.CourseRepository,
	subs deps.SubscriptionChecker,
	notifier deps.UpdateNotifier,
	policy deps.UpdatePolicy,
	logger zerolog.Logger,
) *CourseUseCase {
	return &CourseUseCase{
		courses:  courses,
		subs:     subs,
		notifier: notifier,
		policy:   policy,
		logger:   logger,
	}
}

// ListCourses returns the courses visible to the actor: everything for
// moderators, owned courses only for members.
func (u *CourseUseCase) ListCourses(ctx context.Context, actor access.Actor, offset, limit int) ([]entities.Course, int64, error) {
	scope := deps.ListScope{Offset: offset, Limit: limit}
	if !actor.IsModerator() {
		scope.OwnerID = &actor.ID
	}

	courses, count, err := u.courses.List(ctx, scope)
	if err != nil {
		u.logger.Error().Err(err).Int64("actor_id", actor.ID).Msg("failed to list courses")
		return nil, 0, pkgerrors.NewInternalError("failed to list courses")
	}

	return courses, count, nil
}

func (u *CourseUseCase) CreateCourse(ctx context.Context, actor access.Actor, req dto.CreateCourseRequest) (*entities.Course, error) {
	if !access.Allowed(actor, access.ActionCreate, access.ResourceCourse, false) {
		return nil, pkgerrors.NewPermissionError("moderators may not create courses")
	}

	if req.Name == "" {
		return nil, pkgerrors.NewValidationError("name is required")
	}
	if req.Description == "" {
		return nil, pkgerrors.NewValidationError("description is required")
	}

	ownerID := actor.ID
	course := &entities.Course{
		Name:        req.Name,
		Description: req.Description,
		Preview:     req.Preview,
		OwnerID:     &ownerID,
	}

	if err := u.courses.Create(ctx, course); err != nil {
		u.logger.Error().Err(err).Int64("actor_id", actor.ID).Msg("failed to create course")
		return nil, pkgerrors.NewInternalError("failed to create course")
	}

	u.logger.Info().
		Int64("course_id", course.ID).
		Int64("owner_id", actor.ID).
		Msg("course created")

	return course, nil
}

func (u *CourseUseCase) GetCourse(ctx context.Context, actor access.Actor, id int64) (*entities.Course, *bool, error) {
	course, err := u.loadCourse(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !access.Allowed(actor, access.ActionRetrieve, access.ResourceCourse, course.IsOwnedBy(actor.ID)) {
		return nil, nil, pkgerrors.NewPermissionError("you do not have access to this course")
	}

	if actor.IsModerator() {
		return course, nil, nil
	}

	subscribed, err := u.subs.IsSubscribed(ctx, actor.ID, course.ID)
	if err != nil {
		u.logger.Error().Err(err).
			Int64("actor_id", actor.ID).
			Int64("course_id", course.ID).
			Msg("failed to check subscription status")
		return nil, nil, pkgerrors.NewInternalError("failed to check subscription status")
	}

	return course, &subscribed, nil
}

// UpdateCourse applies the patch and triggers a notification cycle
// unconditionally: a direct course update always notifies subscribers,
// independent of the debounce window.
func (u *CourseUseCase) UpdateCourse(ctx context.Context, actor access.Actor, id int64, req dto.UpdateCourseRequest) (*entities.Course, error) {
	course, err := u.loadCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.Allowed(actor, access.ActionUpdate, access.ResourceCourse, course.IsOwnedBy(actor.ID)) {
		return nil, pkgerrors.NewPermissionError("you do not have access to this course")
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Preview != nil {
		course.Preview = req.Preview
	}

	if err := u.courses.Update(ctx, course); err != nil {
		u.logger.Error().Err(err).Int64("course_id", id).Msg("failed to update course")
		return nil, pkgerrors.NewInternalError("failed to update course")
	}

	u.fireNotificationCycle(ctx, course)

	return course, nil
}

func (u *CourseUseCase) DeleteCourse(ctx context.Context, actor access.Actor, id int64) error {
	course, err := u.loadCourse(ctx, id)
	if err != nil {
		return err
	}

	if !access.Allowed(actor, access.ActionDestroy, access.ResourceCourse, course.IsOwnedBy(actor.ID)) {
		return pkgerrors.NewPermissionError("only the owner may delete a course")
	}

	if err := u.courses.Delete(ctx, id); err != nil {
		u.logger.Error().Err(err).Int64("course_id", id).Msg("failed to delete course")
		return pkgerrors.NewInternalError("failed to delete course")
	}

	u.logger.Info().
		Int64("course_id", id).
		Int64("actor_id", actor.ID).
		Msg("course deleted with its lessons")

	return nil
}

// fireNotificationCycle stamps updated_at and dispatches jobs. Enqueue
// failures are logged, not surfaced: the mutation already succeeded.
func (u *CourseUseCase) fireNotificationCycle(ctx context.Context, course *entities.Course) {
	now := u.policy.Stamp()
	if err := u.courses.SetUpdatedAt(ctx, course.ID, now); err != nil {
		u.logger.Error().Err(err).Int64("course_id", course.ID).Msg("failed to stamp course update time")
	}
	course.UpdatedAt = &now

	if err := u.notifier.Notify(ctx, course.ID, course.Name); err != nil {
		u.logger.Error().Err(err).
			Int64("course_id", course.ID).
			Msg("failed to dispatch update notifications")
	}
}

func (u *CourseUseCase) loadCourse(ctx context.Context, id int64) (*entities.Course, error) {
	course, err := u.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courseerrors.ErrCourseNotFound) {
			return nil, pkgerrors.NewNotFoundError("course not found")
		}
		u.logger.Error().Err(err).Int64("course_id", id).Msg("failed to load course")
		return nil, pkgerrors.NewInternalError("failed to load course")
	}
	return course, nil
}
