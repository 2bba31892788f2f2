package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/courseflow/course-service/internal/domain/payment/deps"
	"github.com/courseflow/course-service/internal/domain/payment/entities"
	payerrors "github.com/courseflow/course-service/internal/domain/payment/errors"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) deps.PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	result := r.db.WithContext(ctx).Create(payment)
	if result.Error != nil {
		return payerrors.ErrDatabaseOperation
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*entities.Payment, error) {
	var payment entities.Payment
	result := r.db.WithContext(ctx).First(&payment, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, payerrors.ErrPaymentNotFound
		}
		return nil, payerrors.ErrDatabaseOperation
	}

	return &payment, nil
}

func (r *PaymentRepository) List(ctx context.Context, filter deps.ListFilter) ([]entities.Payment, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Payment{})
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}
	if filter.LessonID != nil {
		query = query.Where("lesson_id = ?", *filter.LessonID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, payerrors.ErrDatabaseOperation
	}

	ordering := "date_paid DESC"
	if filter.Ascending {
		ordering = "date_paid"
	}

	var payments []entities.Payment
	result := query.
		Order(ordering).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&payments)

	if result.Error != nil {
		return nil, 0, payerrors.ErrDatabaseOperation
	}

	return payments, count, nil
}
