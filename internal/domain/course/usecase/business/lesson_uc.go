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
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
)

type LessonUseCase struct {
	lessons      deps.LessonRepository
	courses      deps.CourseRepository
	notifier     deps.UpdateNotifier
	policy       deps.UpdatePolicy
	allowedHosts []string
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

func NewLessonUseCase(
	lessons deps.LessonRepository,
	courses deps.CourseRepository,
	notifier deps.UpdateNotifier,
	policy deps.UpdatePolicy,
	allowedHosts []string,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *LessonUseCase {
	return &LessonUseCase{
		lessons:      lessons,
		courses:      courses,
		notifier:     notifier,
		policy:       policy,
		allowedHosts: allowedHosts,
		metrics:      m,
		logger:       logger,
	}
}

// ListLessons returns the lessons visible to the actor: everything for
// moderators, owned lessons only for members.
func (u *LessonUseCase) ListLessons(ctx context.Context, actor access.Actor, offset, limit int) ([]entities.Lesson, int64, error) {
	scope := deps.ListScope{Offset: offset, Limit: limit}
	if !actor.IsModerator() {
		scope.OwnerID = &actor.ID
	}

	lessons, count, err := u.lessons.List(ctx, scope)
	if err != nil {
		u.logger.Error().Err(err).Int64("actor_id", actor.ID).Msg("failed to list lessons")
		return nil, 0, pkgerrors.NewInternalError("failed to list lessons")
	}

	return lessons, count, nil
}

func (u *LessonUseCase) CreateLesson(ctx context.Context, actor access.Actor, req dto.CreateLessonRequest) (*entities.Lesson, error) {
	if !access.Allowed(actor, access.ActionCreate, access.ResourceLesson, false) {
		return nil, pkgerrors.NewPermissionError("moderators may not create lessons")
	}

	if req.Name == "" {
		return nil, pkgerrors.NewValidationError("name is required")
	}
	if req.Description == "" {
		return nil, pkgerrors.NewValidationError("description is required")
	}
	if err := validateVideoURL(req.VideoURL, u.allowedHosts); err != nil {
		return nil, err
	}

	exists, err := u.courses.Exists(ctx, req.CourseID)
	if err != nil {
		u.logger.Error().Err(err).Int64("course_id", req.CourseID).Msg("failed to check course existence")
		return nil, pkgerrors.NewInternalError("failed to check course existence")
	}
	if !exists {
		return nil, pkgerrors.NewNotFoundError("course not found")
	}

	ownerID := actor.ID
	lesson := &entities.Lesson{
		Name:        req.Name,
		Description: req.Description,
		Preview:     req.Preview,
		VideoURL:    req.VideoURL,
		CourseID:    req.CourseID,
		OwnerID:     &ownerID,
	}

	if err := u.lessons.Create(ctx, lesson); err != nil {
		u.logger.Error().Err(err).Int64("actor_id", actor.ID).Msg("failed to create lesson")
		return nil, pkgerrors.NewInternalError("failed to create lesson")
	}

	u.logger.Info().
		Int64("lesson_id", lesson.ID).
		Int64("course_id", lesson.CourseID).
		Int64("owner_id", actor.ID).
		Msg("lesson created")

	return lesson, nil
}

func (u *LessonUseCase) GetLesson(ctx context.Context, actor access.Actor, id int64) (*entities.Lesson, error) {
	lesson, err := u.loadLesson(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.Allowed(actor, access.ActionRetrieve, access.ResourceLesson, lesson.IsOwnedBy(actor.ID)) {
		return nil, pkgerrors.NewPermissionError("you do not have access to this lesson")
	}

	return lesson, nil
}

// UpdateLesson applies the patch and runs the debounce policy against
// the parent course: the cycle fires at most once per window for
// lesson-level changes.
func (u *LessonUseCase) UpdateLesson(ctx context.Context, actor access.Actor, id int64, req dto.UpdateLessonRequest) (*entities.Lesson, error) {
	lesson, err := u.loadLesson(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.Allowed(actor, access.ActionUpdate, access.ResourceLesson, lesson.IsOwnedBy(actor.ID)) {
		return nil, pkgerrors.NewPermissionError("you do not have access to this lesson")
	}

	if req.VideoURL != nil {
		if err := validateVideoURL(req.VideoURL, u.allowedHosts); err != nil {
			return nil, err
		}
		lesson.VideoURL = req.VideoURL
	}
	if req.Name != nil {
		lesson.Name = *req.Name
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.Preview != nil {
		lesson.Preview = req.Preview
	}

	if err := u.lessons.Update(ctx, lesson); err != nil {
		u.logger.Error().Err(err).Int64("lesson_id", id).Msg("failed to update lesson")
		return nil, pkgerrors.NewInternalError("failed to update lesson")
	}

	u.runDebouncedNotification(ctx, lesson.CourseID)

	return lesson, nil
}

func (u *LessonUseCase) DeleteLesson(ctx context.Context, actor access.Actor, id int64) error {
	lesson, err := u.loadLesson(ctx, id)
	if err != nil {
		return err
	}

	if !access.Allowed(actor, access.ActionDestroy, access.ResourceLesson, lesson.IsOwnedBy(actor.ID)) {
		return pkgerrors.NewPermissionError("only the owner may delete a lesson")
	}

	if err := u.lessons.Delete(ctx, id); err != nil {
		u.logger.Error().Err(err).Int64("lesson_id", id).Msg("failed to delete lesson")
		return pkgerrors.NewInternalError("failed to delete lesson")
	}

	return nil
}

// runDebouncedNotification fires a course-level notification cycle when
// the debounce window has elapsed since the previous one. Failures stay
// local: the lesson mutation already succeeded.
func (u *LessonUseCase) runDebouncedNotification(ctx context.Context, courseID int64) {
	course, err := u.courses.GetByID(ctx, courseID)
	if err != nil {
		u.logger.Error().Err(err).Int64("course_id", courseID).Msg("failed to load course for notification check")
		return
	}

	if !u.policy.ShouldNotify(course.UpdatedAt) {
		u.metrics.NotificationsSuppressed.Inc()
		u.logger.Debug().
			Int64("course_id", courseID).
			Msg("notification suppressed by debounce window")
		return
	}

	now := u.policy.Stamp()
	if err := u.courses.SetUpdatedAt(ctx, courseID, now); err != nil {
		u.logger.Error().Err(err).Int64("course_id", courseID).Msg("failed to stamp course update time")
	}

	if err := u.notifier.Notify(ctx, course.ID, course.Name); err != nil {
		u.logger.Error().Err(err).
			Int64("course_id", courseID).
			Msg("failed to dispatch update notifications")
	}
}

func (u *LessonUseCase) loadLesson(ctx context.Context, id int64) (*entities.Lesson, error) {
	lesson, err := u.lessons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courseerrors.ErrLessonNotFound) {
			return nil, pkgerrors.NewNotFoundError("lesson not found")
		}
		u.logger.Error().Err(err).Int64("lesson_id", id).Msg("failed to load lesson")
		return nil, pkgerrors.NewInternalError("failed to load lesson")
	}
	return lesson, nil
}
