package deps

import (
	"context"

	"github.com/courseflow/course-service/internal/domain/access"
	"github.com/courseflow/course-service/internal/domain/subscription/entities"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entities.Subscription) error
	DeleteByUserAndCourse(ctx context.Context, userID, courseID int64) error
	Exists(ctx context.Context, userID, courseID int64) (bool, error)
	GetCourseSubscriberEmails(ctx context.Context, courseID int64) ([]string, error)
}

// CourseFinder verifies a course exists before a subscription is opened.
type CourseFinder interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type SubscriptionUseCase interface {
	Subscribe(ctx context.Context, actor access.Actor, courseID int64) (*entities.Subscription, error)
	Unsubscribe(ctx context.Context, actor access.Actor, courseID int64) error
}
