package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/courseflow/course-service/internal/domain/subscription/deps"
	"github.com/courseflow/course-service/internal/domain/subscription/entities"
	suberrors "github.com/courseflow/course-service/internal/domain/subscription/errors"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) deps.SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create inserts the subscription; the unique (user_id, course_id) index
// turns a repeat subscribe into ErrSubscriptionAlreadyExists.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *entities.Subscription) error {
	result := r.db.WithContext(ctx).Create(sub)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return suberrors.ErrSubscriptionAlreadyExists
		}
		return suberrors.ErrDatabaseOperation
	}
	return nil
}

func (r *SubscriptionRepository) DeleteByUserAndCourse(ctx context.Context, userID, courseID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&entities.Subscription{})

	if result.Error != nil {
		return suberrors.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return suberrors.ErrSubscriptionNotFound
	}

	return nil
}

func (r *SubscriptionRepository) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count)

	if result.Error != nil {
		return false, suberrors.ErrDatabaseOperation
	}

	return count > 0, nil
}

// GetCourseSubscriberEmails returns the addresses of every active user
// following the course.
func (r *SubscriptionRepository) GetCourseSubscriberEmails(ctx context.Context, courseID int64) ([]string, error) {
	var emails []string
	result := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Joins("JOIN users ON users.id = subscriptions.user_id").
		Where("subscriptions.course_id = ? AND users.is_active", courseID).
		Pluck("users.email", &emails)

	if result.Error != nil {
		return nil, suberrors.ErrDatabaseOperation
	}

	return emails, nil
}
