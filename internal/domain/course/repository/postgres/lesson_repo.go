package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/courseflow/course-service/internal/domain/course/deps"
	"github.com/courseflow/course-service/internal/domain/course/entities"
	courseerrors "github.com/courseflow/course-service/internal/domain/course/errors"
)

type LessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) deps.LessonRepository {
	return &LessonRepository{db: db}
}

func (r *LessonRepository) Create(ctx context.Context, lesson *entities.Lesson) error {
	result := r.db.WithContext(ctx).Create(lesson)
	if result.Error != nil {
		return courseerrors.ErrDatabaseOperation
	}
	return nil
}

func (r *LessonRepository) GetByID(ctx context.Context, id int64) (*entities.Lesson, error) {
	var lesson entities.Lesson
	result := r.db.WithContext(ctx).First(&lesson, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, courseerrors.ErrLessonNotFound
		}
		return nil, courseerrors.ErrDatabaseOperation
	}

	return &lesson, nil
}

func (r *LessonRepository) List(ctx context.Context, scope deps.ListScope) ([]entities.Lesson, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Lesson{})
	if scope.OwnerID != nil {
		query = query.Where("owner_id = ?", *scope.OwnerID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, courseerrors.ErrDatabaseOperation
	}

	var lessons []entities.Lesson
	result := query.
		Order("name").
		Offset(scope.Offset).
		Limit(scope.Limit).
		Find(&lessons)

	if result.Error != nil {
		return nil, 0, courseerrors.ErrDatabaseOperation
	}

	return lessons, count, nil
}

func (r *LessonRepository) Update(ctx context.Context, lesson *entities.Lesson) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Lesson{}).
		Where("id = ?", lesson.ID).
		Updates(map[string]any{
			"name":        lesson.Name,
			"description": lesson.Description,
			"preview":     lesson.Preview,
			"video_url":   lesson.VideoURL,
		})

	if result.Error != nil {
		return courseerrors.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return courseerrors.ErrLessonNotFound
	}

	return nil
}

func (r *LessonRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Lesson{}, id)
	if result.Error != nil {
		return courseerrors.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return courseerrors.ErrLessonNotFound
	}

	return nil
}
