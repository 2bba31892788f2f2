package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/courseflow/course-service/internal/domain/user/deps"
	"github.com/courseflow/course-service/internal/domain/user/entities"
	usererrors "github.com/courseflow/course-service/internal/domain/user/errors"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) deps.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	var user entities.User
	result := r.db.WithContext(ctx).First(&user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, usererrors.ErrDatabaseOperation
	}

	return &user, nil
}

func (r *UserRepository) DeactivateInactiveSince(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("is_active AND last_active_at < ?", cutoff).
		Update("is_active", false)

	if result.Error != nil {
		return 0, usererrors.ErrDatabaseOperation
	}

	return result.RowsAffected, nil
}
