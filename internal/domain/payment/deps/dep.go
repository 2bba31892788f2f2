package deps

import (
	"context"

	"github.com/courseflow/course-service/internal/domain/access"
	"github.com/courseflow/course-service/internal/domain/payment/dto"
	"github.com/courseflow/course-service/internal/domain/payment/entities"
)

// ListFilter narrows and orders payment list queries. Lists come back
// newest-first; Ascending flips to oldest-first.
type ListFilter struct {
	CourseID  *int64
	LessonID  *int64
	Type      *entities.PaymentType
	Ascending bool
	Offset    int
	Limit     int
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	GetByID(ctx context.Context, id int64) (*entities.Payment, error)
	List(ctx context.Context, filter ListFilter) ([]entities.Payment, int64, error)
}

// TargetFinder verifies the purchased course or lesson exists.
type TargetFinder interface {
	CourseExists(ctx context.Context, id int64) (bool, error)
	LessonExists(ctx context.Context, id int64) (bool, error)
}

type PaymentUseCase interface {
	CreatePayment(ctx context.Context, actor access.Actor, req dto.CreatePaymentRequest) (*entities.Payment, error)
	ListPayments(ctx context.Context, actor access.Actor, filter ListFilter) ([]entities.Payment, int64, error)
	GetStatus(ctx context.Context, actor access.Actor, id int64) (dto.StatusResponse, error)
}
