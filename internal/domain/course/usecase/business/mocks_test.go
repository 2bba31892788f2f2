package business

import (
	"context"
	"time"

	"github.com/courseflow/course-service/internal/domain/course/deps"
	"github.com/courseflow/course-service/internal/domain/course/entities"
)

type mockCourseRepo struct {
	createFn       func(ctx context.Context, course *entities.Course) error
	getByIDFn      func(ctx context.Context, id int64) (*entities.Course, error)
	listFn         func(ctx context.Context, scope deps.ListScope) ([]entities.Course, int64, error)
	updateFn       func(ctx context.Context, course *entities.Course) error
	setUpdatedAtFn func(ctx context.Context, id int64, at time.Time) error
	deleteFn       func(ctx context.Context, id int64) error
	existsFn       func(ctx context.Context, id int64) (bool, error)
}

func (m *mockCourseRepo) Create(ctx context.Context, course *entities.Course) error {
	return m.createFn(ctx, course)
}

func (m *mockCourseRepo) GetByID(ctx context.Context, id int64) (*entities.Course, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockCourseRepo) List(ctx context.Context, scope deps.ListScope) ([]entities.Course, int64, error) {
	return m.listFn(ctx, scope)
}

func (m *mockCourseRepo) Update(ctx context.Context, course *entities.Course) error {
	return m.updateFn(ctx, course)
}

func (m *mockCourseRepo) SetUpdatedAt(ctx context.Context, id int64, at time.Time) error {
	return m.setUpdatedAtFn(ctx, id, at)
}

func (m *mockCourseRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockCourseRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}

type mockLessonRepo struct {
	createFn  func(ctx context.Context, lesson *entities.Lesson) error
	getByIDFn func(ctx context.Context, id int64) (*entities.Lesson, error)
	listFn    func(ctx context.Context, scope deps.ListScope) ([]entities.Lesson, int64, error)
	updateFn  func(ctx context.Context, lesson *entities.Lesson) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockLessonRepo) Create(ctx context.Context, lesson *entities.Lesson) error {
	return m.createFn(ctx, lesson)
}

func (m *mockLessonRepo) GetByID(ctx context.Context, id int64) (*entities.Lesson, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockLessonRepo) List(ctx context.Context, scope deps.ListScope) ([]entities.Lesson, int64, error) {
	return m.listFn(ctx, scope)
}

func (m *mockLessonRepo) Update(ctx context.Context, lesson *entities.Lesson) error {
	return m.updateFn(ctx, lesson)
}

func (m *mockLessonRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockSubscriptionChecker struct {
	subscribed bool
	err        error
}

func (m *mockSubscriptionChecker) IsSubscribed(_ context.Context, _, _ int64) (bool, error) {
	return m.subscribed, m.err
}

type mockNotifier struct {
	calls []notifyCall
	err   error
}

type notifyCall struct {
	courseID   int64
	courseName string
}

func (m *mockNotifier) Notify(_ context.Context, courseID int64, courseName string) error {
	m.calls = append(m.calls, notifyCall{courseID: courseID, courseName: courseName})
	return m.err
}

type mockPolicy struct {
	shouldNotify bool
	stamp        time.Time
}

func (m *mockPolicy) ShouldNotify(_ *time.Time) bool {
	return m.shouldNotify
}

func (m *mockPolicy) Stamp() time.Time {
	return m.stamp
}

func ptr[T any](v T) *T {
	return &v
}
