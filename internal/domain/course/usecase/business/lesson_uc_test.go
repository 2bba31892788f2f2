package business

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/internal/domain/course/dto"
	"github.com/courseflow/course-service/internal/domain/course/entities"
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
)

func newLessonUC(lessons *mockLessonRepo, courses *mockCourseRepo, notifier *mockNotifier, policy *mockPolicy) *LessonUseCase {
	if courses == nil {
		courses = &mockCourseRepo{
			existsFn: func(_ context.Context, _ int64) (bool, error) { return true, nil },
		}
	}
	if notifier == nil {
		notifier = &mockNotifier{}
	}
	if policy == nil {
		policy = &mockPolicy{shouldNotify: true, stamp: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	}
	return NewLessonUseCase(lessons, courses, notifier, policy, []string{"youtube.com"}, metrics.GetDefaultMetrics(), zerolog.Nop())
}

func TestCreateLessonStampsOwner(t *testing.T) {
	var created *entities.Lesson
	repo := &mockLessonRepo{
		createFn: func(_ context.Context, lesson *entities.Lesson) error {
			lesson.ID = 7
			created = lesson
			return nil
		},
	}
	uc := newLessonUC(repo, nil, nil, nil)

	lesson, err := uc.CreateLesson(context.Background(), member, dto.CreateLessonRequest{
		Name:        "Vectors",
		Description: "Vector spaces",
		VideoURL:    ptr("https://www.youtube.com/watch?v=abc"),
		CourseID:    1,
	})
	if err != nil {
		t.Fatalf("CreateLesson() error = %v", err)
	}

	if created.OwnerID == nil || *created.OwnerID != member.ID {
		t.Error("owner must be stamped from the actor")
	}
	if lesson.ID != 7 {
		t.Errorf("lesson ID = %d, want 7", lesson.ID)
	}
}

func TestCreateLessonVideoHostValidation(t *testing.T) {
	uc := newLessonUC(&mockLessonRepo{}, nil, nil, nil)

	tests := []struct {
		name     string
		videoURL *string
		wantErr  bool
	}{
		{"youtube allowed", ptr("https://youtube.com/watch?v=abc"), false},
		{"www subdomain allowed", ptr("https://www.youtube.com/watch?v=abc"), false},
		{"foreign host rejected", ptr("https://vimeo.com/12345"), true},
		{"lookalike host rejected", ptr("https://notyoutube.com/watch"), true},
		{"no video is fine", nil, false},
		{"empty video is fine", ptr(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockLessonRepo{
				createFn: func(_ context.Context, _ *entities.Lesson) error { return nil },
			}
			uc = newLessonUC(repo, nil, nil, nil)

			_, err := uc.CreateLesson(context.Background(), member, dto.CreateLessonRequest{
				Name:        "Vectors",
				Description: "desc",
				VideoURL:    tt.videoURL,
				CourseID:    1,
			})

			var valErr *pkgerrors.ValidationError
			if tt.wantErr && !errors.As(err, &valErr) {
				t.Errorf("error = %v, want ValidationError", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("error = %v, want nil", err)
			}
		})
	}
}

func TestCreateLessonModeratorDenied(t *testing.T) {
	uc := newLessonUC(&mockLessonRepo{}, nil, nil, nil)

	_, err := uc.CreateLesson(context.Background(), moderator, dto.CreateLessonRequest{
		Name:        "Vectors",
		Description: "desc",
		CourseID:    1,
	})

	var permErr *pkgerrors.PermissionError
	if !errors.As(err, &permErr) {
		t.Errorf("error = %v, want PermissionError", err)
	}
}

func TestCreateLessonUnknownCourse(t *testing.T) {
	courses := &mockCourseRepo{
		existsFn: func(_ context.Context, _ int64) (bool, error) { return false, nil },
	}
	uc := newLessonUC(&mockLessonRepo{}, courses, nil, nil)

	_, err := uc.CreateLesson(context.Background(), member, dto.CreateLessonRequest{
		Name:        "Vectors",
		Description: "desc",
		CourseID:    999,
	})

	var notFound *pkgerrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func lessonUpdateFixture(ownerID int64, lastCycle *time.Time) (*mockLessonRepo, *mockCourseRepo) {
	lessons := &mockLessonRepo{
		getByIDFn: func(_ context.Context, id int64) (*entities.Lesson, error) {
			return &entities.Lesson{ID: id, Name: "Vectors", Description: "d", CourseID: 1, OwnerID: &ownerID}, nil
		},
		updateFn: func(_ context.Context, _ *entities.Lesson) error { return nil },
	}
	courses := &mockCourseRepo{
		getByIDFn: func(_ context.Context, id int64) (*entities.Course, error) {
			return &entities.Course{ID: id, Name: "Algebra", UpdatedAt: lastCycle}, nil
		},
		setUpdatedAtFn: func(_ context.Context, _ int64, _ time.Time) error { return nil },
	}
	return lessons, courses
}

func TestUpdateLessonFiresNotificationWhenWindowElapsed(t *testing.T) {
	lessons, courses := lessonUpdateFixture(member.ID, nil)
	notifier := &mockNotifier{}
	policy := &mockPolicy{shouldNotify: true, stamp: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}

	uc := newLessonUC(lessons, courses, notifier, policy)

	if _, err := uc.UpdateLesson(context.Background(), member, 7, dto.UpdateLessonRequest{Name: ptr("Matrices")}); err != nil {
		t.Fatalf("UpdateLesson() error = %v", err)
	}

	if len(notifier.calls) != 1 {
		t.Fatalf("notifier called %d times, want 1", len(notifier.calls))
	}
	if notifier.calls[0].courseID != 1 || notifier.calls[0].courseName != "Algebra" {
		t.Errorf("notified %+v, want course 1 Algebra", notifier.calls[0])
	}
}

func TestUpdateLessonSuppressedWithinWindow(t *testing.T) {
	recent := time.Now().UTC().Add(-time.Hour)
	var stamped bool

	lessons, courses := lessonUpdateFixture(member.ID, &recent)
	courses.setUpdatedAtFn = func(_ context.Context, _ int64, _ time.Time) error {
		stamped = true
		return nil
	}
	notifier := &mockNotifier{}
	policy := &mockPolicy{shouldNotify: false}

	uc := newLessonUC(lessons, courses, notifier, policy)

	if _, err := uc.UpdateLesson(context.Background(), member, 7, dto.UpdateLessonRequest{Name: ptr("Matrices")}); err != nil {
		t.Fatalf("UpdateLesson() error = %v", err)
	}

	if len(notifier.calls) != 0 {
		t.Error("suppressed cycle must not notify")
	}
	if stamped {
		t.Error("suppressed cycle must not stamp updated_at")
	}
}

func TestUpdateLessonRejectsBadVideoURL(t *testing.T) {
	lessons, courses := lessonUpdateFixture(member.ID, nil)
	updated := false
	lessons.updateFn = func(_ context.Context, _ *entities.Lesson) error {
		updated = true
		return nil
	}

	uc := newLessonUC(lessons, courses, nil, nil)

	_, err := uc.UpdateLesson(context.Background(), member, 7, dto.UpdateLessonRequest{VideoURL: ptr("https://vimeo.com/1")})
	var valErr *pkgerrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if updated {
		t.Error("rejected patch must not reach the repository")
	}
}

func TestUpdateLessonNonOwnerDenied(t *testing.T) {
	lessons, courses := lessonUpdateFixture(member.ID, nil)
	uc := newLessonUC(lessons, courses, nil, nil)

	_, err := uc.UpdateLesson(context.Background(), otherUser, 7, dto.UpdateLessonRequest{Name: ptr("X")})
	var permErr *pkgerrors.PermissionError
	if !errors.As(err, &permErr) {
		t.Errorf("error = %v, want PermissionError", err)
	}
}

func TestDeleteLessonModeratorDenied(t *testing.T) {
	ownerID := member.ID
	lessons := &mockLessonRepo{
		getByIDFn: func(_ context.Context, id int64) (*entities.Lesson, error) {
			return &entities.Lesson{ID: id, CourseID: 1, OwnerID: &ownerID}, nil
		},
	}
	uc := newLessonUC(lessons, nil, nil, nil)

	err := uc.DeleteLesson(context.Background(), moderator, 7)
	var permErr *pkgerrors.PermissionError
	if !errors.As(err, &permErr) {
		t.Errorf("error = %v, want PermissionError", err)
	}
}
