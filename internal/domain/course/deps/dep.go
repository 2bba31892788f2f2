package deps

import (
	"context"
	"time"

	"github.com/courseflow/course-service/internal/domain/access"
	"github.com/courseflow/course-service/internal/domain/course/dto"
	"github.com/courseflow/course-service/internal/domain/course/entities"
)

// ListScope narrows list queries to a single owner; a nil OwnerID means
// no narrowing (moderator view).
type ListScope struct {
	OwnerID *int64
	Offset  int
	Limit   int
}

type CourseRepository interface {
	Create(ctx context.Context, course *entities.Course) error
	GetByID(ctx context.Context, id int64) (*entities.Course, error)
	List(ctx context.Context, scope ListScope) ([]entities.Course, int64, error)
	Update(ctx context.Context, course *entities.Course) error
	SetUpdatedAt(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type LessonRepository interface {
	Create(ctx context.Context, lesson *entities.Lesson) error
	GetByID(ctx context.Context, id int64) (*entities.Lesson, error)
	List(ctx context.Context, scope ListScope) ([]entities.Lesson, int64, error)
	Update(ctx context.Context, lesson *entities.Lesson) error
	Delete(ctx context.Context, id int64) error
}

// SubscriptionChecker reports whether a user follows a course.
type SubscriptionChecker interface {
	IsSubscribed(ctx context.Context, userID, courseID int64) (bool, error)
}

// UpdateNotifier fans a course-updated event out to subscribers.
type UpdateNotifier interface {
	Notify(ctx context.Context, courseID int64, courseName string) error
}

// UpdatePolicy decides whether a lesson-level change should trigger a
// course-level notification cycle.
type UpdatePolicy interface {
	ShouldNotify(lastUpdated *time.Time) bool
	Stamp() time.Time
}

type CourseUseCase interface {
	ListCourses(ctx context.Context, actor access.Actor, offset, limit int) ([]entities.Course, int64, error)
	CreateCourse(ctx context.Context, actor access.Actor, req dto.CreateCourseRequest) (*entities.Course, error)
	// GetCourse returns the course and, for non-moderators, whether the
	// actor is subscribed to it (nil for moderators).
	GetCourse(ctx context.Context, actor access.Actor, id int64) (*entities.Course, *bool, error)
	UpdateCourse(ctx context.Context, actor access.Actor, id int64, req dto.UpdateCourseRequest) (*entities.Course, error)
	DeleteCourse(ctx context.Context, actor access.Actor, id int64) error
}

type LessonUseCase interface {
	ListLessons(ctx context.Context, actor access.Actor, offset, limit int) ([]entities.Lesson, int64, error)
	CreateLesson(ctx context.Context, actor access.Actor, req dto.CreateLessonRequest) (*entities.Lesson, error)
	GetLesson(ctx context.Context, actor access.Actor, id int64) (*entities.Lesson, error)
	UpdateLesson(ctx context.Context, actor access.Actor, id int64, req dto.UpdateLessonRequest) (*entities.Lesson, error)
	DeleteLesson(ctx context.Context, actor access.Actor, id int64) error
}
