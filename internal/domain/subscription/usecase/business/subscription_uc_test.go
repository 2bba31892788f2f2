package business

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/internal/domain/access"
	"github.com/courseflow/course-service/internal/domain/subscription/entities"
	suberrors "github.com/courseflow/course-service/internal/domain/subscription/errors"
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
)

var (
	member    = access.Actor{ID: 1, Email: "member@example.com", Role: access.RoleMember}
	moderator = access.Actor{ID: 9, Email: "mod@example.com", Role: access.RoleModerator}
)

type mockSubRepo struct {
	createFn func(ctx context.Context, sub *entities.Subscription) error
	deleteFn func(ctx context.Context, userID, courseID int64) error
	existsFn func(ctx context.Context, userID, courseID int64) (bool, error)
	emailsFn func(ctx context.Context, courseID int64) ([]string, error)
}

func (m *mockSubRepo) Create(ctx context.Context, sub *entities.Subscription) error {
	return m.createFn(ctx, sub)
}

func (m *mockSubRepo) DeleteByUserAndCourse(ctx context.Context, userID, courseID int64) error {
	return m.deleteFn(ctx, userID, courseID)
}

func (m *mockSubRepo) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	return m.existsFn(ctx, userID, courseID)
}

func (m *mockSubRepo) GetCourseSubscriberEmails(ctx context.Context, courseID int64) ([]string, error) {
	return m.emailsFn(ctx, courseID)
}

type mockCourseFinder struct {
	exists bool
	err    error
}

func (m *mockCourseFinder) Exists(_ context.Context, _ int64) (bool, error) {
	return m.exists, m.err
}

func newUC(repo *mockSubRepo, courses *mockCourseFinder) *SubscriptionUseCase {
	if courses == nil {
		courses = &mockCourseFinder{exists: true}
	}
	return NewSubscriptionUseCase(repo, courses, metrics.GetDefaultMetrics(), zerolog.Nop())
}

func TestSubscribeStampsUser(t *testing.T) {
	var created *entities.Subscription
	repo := &mockSubRepo{
		createFn: func(_ context.Context, sub *entities.Subscription) error {
			sub.ID = 5
			created = sub
			return nil
		},
	}
	uc := newUC(repo, nil)

	sub, err := uc.Subscribe(context.Background(), member, 3)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	if created.UserID != member.ID {
		t.Error("subscription must be stamped with the acting user")
	}
	if sub.CourseID != 3 {
		t.Errorf("course ID = %d, want 3", sub.CourseID)
	}
}

func TestSubscribeModeratorDenied(t *testing.T) {
	uc := newUC(&mockSubRepo{}, nil)

	_, err := uc.Subscribe(context.Background(), moderator, 3)
	var permErr *pkgerrors.PermissionError
	if !errors.As(err, &permErr) {
		t.Errorf("error = %v, want PermissionError", err)
	}
}

func TestSubscribeUnknownCourse(t *testing.T) {
	uc := newUC(&mockSubRepo{}, &mockCourseFinder{exists: false})

	_, err := uc.Subscribe(context.Background(), member, 999)
	var notFound *pkgerrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func TestSubscribeDuplicateConflict(t *testing.T) {
	repo := &mockSubRepo{
		createFn: func(_ context.Context, _ *entities.Subscription) error {
			return suberrors.ErrSubscriptionAlreadyExists
		},
	}
	uc := newUC(repo, nil)

	_, err := uc.Subscribe(context.Background(), member, 3)
	var conflict *pkgerrors.ConflictError
	if !errors.As(err, &conflict) {
		t.Errorf("error = %v, want ConflictError", err)
	}
}

func TestUnsubscribe(t *testing.T) {
	var gotUser, gotCourse int64
	repo := &mockSubRepo{
		deleteFn: func(_ context.Context, userID, courseID int64) error {
			gotUser, gotCourse = userID, courseID
			return nil
		},
	}
	uc := newUC(repo, nil)

	if err := uc.Unsubscribe(context.Background(), member, 3); err != nil {
		t.Fatalf("Unsubscribe() error = %v", err)
	}
	if gotUser != member.ID || gotCourse != 3 {
		t.Errorf("deleted (%d, %d), want (%d, 3)", gotUser, gotCourse, member.ID)
	}
}

func TestUnsubscribeNotSubscribed(t *testing.T) {
	repo := &mockSubRepo{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return suberrors.ErrSubscriptionNotFound
		},
	}
	uc := newUC(repo, nil)

	err := uc.Unsubscribe(context.Background(), member, 3)
	var notFound *pkgerrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}
