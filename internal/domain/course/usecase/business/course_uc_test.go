package business

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/internal/domain/access"
	"github.com/courseflow/course-service/internal/domain/course/deps"
	"github.com/courseflow/course-service/internal/domain/course/dto"
	"github.com/courseflow/course-service/internal/domain/course/entities"
	courseerrors "github.com/courseflow/course-service/internal/domain/course/errors"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
)

var (
	member    = access.Actor{ID: 1, Email: "member@example.com", Role: access.RoleMember}
	otherUser = access.Actor{ID: 2, Email: "other@example.com", Role: access.RoleMember}
	moderator = access.Actor{ID: 9, Email: "mod@example.com", Role: access.RoleModerator}
)

func newCourseUC(courses *mockCourseRepo, subs *mockSubscriptionChecker, notifier *mockNotifier, policy *mockPolicy) *CourseUseCase {
	if subs == nil {
		subs = &mockSubscriptionChecker{}
	}
	if notifier == nil {
		notifier = &mockNotifier{}
	}
	if policy == nil {
		policy = &mockPolicy{stamp: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	}
	return NewCourseUseCase(courses, subs, notifier, policy, zerolog.Nop())
}

func TestListCoursesScoping(t *testing.T) {
	var gotScope deps.ListScope
	repo := &mockCourseRepo{
		listFn: func(_ context.Context, scope deps.ListScope) ([]entities.Course, int64, error) {
			gotScope = scope
			return nil, 0, nil
		},
	}
	uc := newCourseUC(repo, nil, nil, nil)

	if _, _, err := uc.ListCourses(context.Background(), member, 0, 20); err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if gotScope.OwnerID == nil || *gotScope.OwnerID != member.ID {
		t.Error("member list must be scoped to own courses")
	}

	if _, _, err := uc.ListCourses(context.Background(), moderator, 0, 20); err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if gotScope.OwnerID != nil {
		t.Error("moderator list must not be owner-scoped")
	}
}

func TestCreateCourseStampsOwner(t *testing.T) {
	var created *entities.Course
	repo := &mockCourseRepo{
		createFn: func(_ context.Context, course *entities.Course) error {
			course.ID = 42
			created = course
			return nil
		},
	}
	uc := newCourseUC(repo, nil, nil, nil)

	course, err := uc.CreateCourse(context.Background(), member, dto.CreateCourseRequest{
		Name:        "Algebra",
		Description: "Linear algebra from scratch",
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}

	if created.OwnerID == nil || *created.OwnerID != member.ID {
		t.Error("owner must be stamped from the actor")
	}
	if course.ID != 42 {
		t.Errorf("course ID = %d, want 42", course.ID)
	}
}

func TestCreateCourseModeratorDenied(t *testing.T) {
	uc := newCourseUC(&mockCourseRepo{}, nil, nil, nil)

	_, err := uc.CreateCourse(context.Background(), moderator, dto.CreateCourseRequest{
		Name:        "Algebra",
		Description: "desc",
	})

	var permErr *pkgerrors.PermissionError
	if !errors.As(err, &permErr) {
		t.Errorf("error = %v, want PermissionError", err)
	}
}

func TestCreateCourseValidation(t *testing.T) {
	uc := newCourseUC(&mockCourseRepo{}, nil, nil, nil)

	_, err := uc.CreateCourse(context.Background(), member, dto.CreateCourseRequest{Description: "d"})
	var valErr *pkgerrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestGetCourseSubscriptionFlag(t *testing.T) {
	ownerID := member.ID
	repo := &mockCourseRepo{
		getByIDFn: func(_ context.Context, id int64) (*entities.Course, error) {
			return &entities.Course{ID: id, Name: "Algebra", OwnerID: &ownerID}, nil
		},
	}

	t.Run("member gets flag", func(t *testing.T) {
		uc := newCourseUC(repo, &mockSubscriptionChecker{subscribed: true}, nil, nil)

		_, subscribed, err := uc.GetCourse(context.Background(), member, 1)
		if err != nil {
			t.Fatalf("GetCourse() error = %v", err)
		}
		if subscribed == nil || !*subscribed {
			t.Error("expected is_subscribed = true for a subscribed member")
		}
	})

	t.Run("moderator gets no flag", func(t *testing.T) {
		uc := newCourseUC(repo, &mockSubscriptionChecker{subscribed: true}, nil, nil)

		_, subscribed, err := uc.GetCourse(context.Background(), moderator, 1)
		if err != nil {
			t.Fatalf("GetCourse() error = %v", err)
		}
		if subscribed != nil {
			t.Error("moderator retrieval must not carry a subscription flag")
		}
	})
}

func TestGetCourseNonOwnerDenied(t *testing.T) {
	ownerID := member.ID
	repo := &mockCourseRepo{
		getByIDFn: func(_ context.Context, id int64) (*entities.Course, error) {
			return &entities.Course{ID: id, OwnerID: &ownerID}, nil
		},
	}
	uc := newCourseUC(repo, nil, nil, nil)

	_, _, err := uc.GetCourse(context.Background(), otherUser, 1)
	var permErr *pkgerrors.PermissionError
	if !errors.As(err, &permErr) {
		t.Errorf("error = %v, want PermissionError", err)
	}
}

func TestGetCourseNotFound(t *testing.T) {
	repo := &mockCourseRepo{
		getByIDFn: func(_ context.Context, _ int64) (*entities.Course, error) {
			return nil, courseerrors.ErrCourseNotFound
		},
	}
	uc := newCourseUC(repo, nil, nil, nil)

	_, _, err := uc.GetCourse(context.Background(), member, 404)
	var notFound *pkgerrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func TestUpdateCourseNotifiesUnconditionally(t *testing.T) {
	ownerID := member.ID
	recent := time.Now().UTC().Add(-time.Minute)
	var stamped time.Time

	repo := &mockCourseRepo{
		getByIDFn: func(_ context.Context, id int64) (*entities.Course, error) {
			return &entities.Course{ID: id, Name: "Algebra", OwnerID: &ownerID, UpdatedAt: &recent}, nil
		},
		updateFn: func(_ context.Context, _ *entities.Course) error { return nil },
		setUpdatedAtFn: func(_ context.Context, _ int64, at time.Time) error {
			stamped = at
			return nil
		},
	}
	notifier := &mockNotifier{}
	// Even a policy that would suppress lesson-level cycles does not stop
	// a direct course update from notifying.
	policy := &mockPolicy{shouldNotify: false, stamp: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}

	uc := newCourseUC(repo, nil, notifier, policy)

	_, err := uc.UpdateCourse(context.Background(), member, 1, dto.UpdateCourseRequest{Name: ptr("Algebra II")})
	if err != nil {
		t.Fatalf("UpdateCourse() error = %v", err)
	}

	if len(notifier.calls) != 1 {
		t.Fatalf("notifier called %d times, want 1", len(notifier.calls))
	}
	if notifier.calls[0].courseName != "Algebra II" {
		t.Errorf("notified with name %q, want the patched name", notifier.calls[0].courseName)
	}
	if !stamped.Equal(policy.stamp) {
		t.Errorf("updated_at stamped with %v, want %v", stamped, policy.stamp)
	}
}

func TestUpdateCourseEnqueueFailureDoesNotFailRequest(t *testing.T) {
	ownerID := member.ID
	repo := &mockCourseRepo{
		getByIDFn: func(_ context.Context, id int64) (*entities.Course, error) {
			return &entities.Course{ID: id, Name: "Algebra", OwnerID: &ownerID}, nil
		},
		updateFn:       func(_ context.Context, _ *entities.Course) error { return nil },
		setUpdatedAtFn: func(_ context.Context, _ int64, _ time.Time) error { return nil },
	}
	notifier := &mockNotifier{err: errors.New("broker down")}

	uc := newCourseUC(repo, nil, notifier, nil)

	if _, err := uc.UpdateCourse(context.Background(), member, 1, dto.UpdateCourseRequest{Name: ptr("X")}); err != nil {
		t.Errorf("UpdateCourse() error = %v, want nil despite enqueue failure", err)
	}
}

func TestDeleteCourseOwnerOnly(t *testing.T) {
	ownerID := member.ID
	deleted := false
	repo := &mockCourseRepo{
		getByIDFn: func(_ context.Context, id int64) (*entities.Course, error) {
			return &entities.Course{ID: id, OwnerID: &ownerID}, nil
		},
		deleteFn: func(_ context.Context, _ int64) error {
			deleted = true
			return nil
		},
	}
	uc := newCourseUC(repo, nil, nil, nil)

	// Moderators may update but never delete.
	err := uc.DeleteCourse(context.Background(), moderator, 1)
	var permErr *pkgerrors.PermissionError
	if !errors.As(err, &permErr) {
		t.Errorf("moderator delete error = %v, want PermissionError", err)
	}
	if deleted {
		t.Fatal("moderator delete must not reach the repository")
	}

	if err := uc.DeleteCourse(context.Background(), member, 1); err != nil {
		t.Fatalf("owner delete error = %v", err)
	}
	if !deleted {
		t.Error("owner delete must reach the repository")
	}
}
