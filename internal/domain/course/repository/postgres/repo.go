package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/courseflow/course-service/internal/domain/course/deps"
	"github.com/courseflow/course-service/internal/domain/course/entities"
	courseerrors "github.com/courseflow/course-service/internal/domain/course/errors"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) deps.CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(ctx context.Context, course *entities.Course) error {
	result := r.db.WithContext(ctx).Create(course)
	if result.Error != nil {
		return courseerrors.ErrDatabaseOperation
	}
	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*entities.Course, error) {
	var course entities.Course
	result := r.db.WithContext(ctx).
		Preload("Lessons").
		First(&course, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, courseerrors.ErrCourseNotFound
		}
		return nil, courseerrors.ErrDatabaseOperation
	}

	return &course, nil
}

func (r *CourseRepository) List(ctx context.Context, scope deps.ListScope) ([]entities.Course, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Course{})
	if scope.OwnerID != nil {
		query = query.Where("owner_id = ?", *scope.OwnerID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, courseerrors.ErrDatabaseOperation
	}

	var courses []entities.Course
	result := query.
		Preload("Lessons").
		Order("name").
		Offset(scope.Offset).
		Limit(scope.Limit).
		Find(&courses)

	if result.Error != nil {
		return nil, 0, courseerrors.ErrDatabaseOperation
	}

	return courses, count, nil
}

func (r *CourseRepository) Update(ctx context.Context, course *entities.Course) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Course{}).
		Where("id = ?", course.ID).
		Updates(map[string]any{
			"name":        course.Name,
			"description": course.Description,
			"preview":     course.Preview,
		})

	if result.Error != nil {
		return courseerrors.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return courseerrors.ErrCourseNotFound
	}

	return nil
}

func (r *CourseRepository) SetUpdatedAt(ctx context.Context, id int64, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Course{}).
		Where("id = ?", id).
		Update("updated_at", at)

	if result.Error != nil {
		return courseerrors.ErrDatabaseOperation
	}

	return nil
}

// Delete removes the course; lessons and subscriptions go with it via
// the ON DELETE CASCADE constraints.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Course{}, id)
	if result.Error != nil {
		return courseerrors.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return courseerrors.ErrCourseNotFound
	}

	return nil
}

func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&entities.Course{}).
		Where("id = ?", id).
		Count(&count)

	if result.Error != nil {
		return false, courseerrors.ErrDatabaseOperation
	}

	return count > 0, nil
}
