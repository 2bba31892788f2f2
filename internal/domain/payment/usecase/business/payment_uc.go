package business

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/internal/domain/access"
	"github.com/courseflow/course-service/internal/domain/payment/deps"
	"github.com/courseflow/course-service/internal/domain/payment/dto"
	"github.com/courseflow/course-service/internal/domain/payment/entities"
	payerrors "github.com/courseflow/course-service/internal/domain/payment/errors"
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
	"github.com/courseflow/course-service/internal/infrastructure/stripe"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
)

const (
	StatusPaid        = "paid"
	StatusUnprocessed = "unprocessed"
)

type PaymentUseCase struct {
	payments deps.PaymentRepository
	targets  deps.TargetFinder
	gateway  stripe.Gateway
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

func NewPaymentUseCase(
	payments deps.PaymentRepository,
	targets deps.TargetFinder,
	gateway stripe.Gateway,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments: payments,
		targets:  targets,
		gateway:  gateway,
		metrics:  m,
		logger:   logger,
	}
}

// CreatePayment validates the purchase target, opens a gateway intent and
// records the payment. Exactly one of course_id and lesson_id must be set.
func (u *PaymentUseCase) CreatePayment(ctx context.Context, actor access.Actor, req dto.CreatePaymentRequest) (*entities.Payment, error) {
	if !access.Allowed(actor, access.ActionCreate, access.ResourcePayment, false) {
		return nil, pkgerrors.NewPermissionError("you may not create payments")
	}

	if (req.CourseID == nil) == (req.LessonID == nil) {
		return nil, pkgerrors.NewValidationError("exactly one of course_id and lesson_id must be set")
	}
	if req.Amount <= 0 {
		return nil, pkgerrors.NewValidationError("amount must be a positive integer")
	}

	if len(req.Type) > entities.MaxPaymentTypeLen {
		return nil, pkgerrors.NewValidationErrorf("type must be at most %d characters", entities.MaxPaymentTypeLen)
	}
	paymentType := entities.PaymentType(req.Type)
	if req.Type == "" {
		paymentType = entities.PaymentTypeTransfer
	}

	if err := u.checkTarget(ctx, req.CourseID, req.LessonID); err != nil {
		return nil, err
	}

	intentID, err := u.createIntent(ctx, req.Amount)
	if err != nil {
		return nil, err
	}

	userID := actor.ID
	payment := &entities.Payment{
		UserID:    &userID,
		CourseID:  req.CourseID,
		LessonID:  req.LessonID,
		Amount:    req.Amount,
		Type:      paymentType,
		PaymentID: &intentID,
		DatePaid:  time.Now().UTC(),
	}

	if err := u.payments.Create(ctx, payment); err != nil {
		u.logger.Error().Err(err).
			Int64("user_id", actor.ID).
			Str("intent_id", intentID).
			Msg("failed to record payment")
		return nil, pkgerrors.NewInternalError("failed to record payment")
	}

	u.logger.Info().
		Int64("payment_id", payment.ID).
		Int64("user_id", actor.ID).
		Int64("amount", req.Amount).
		Msg("payment created")

	return payment, nil
}

func (u *PaymentUseCase) ListPayments(ctx context.Context, actor access.Actor, filter deps.ListFilter) ([]entities.Payment, int64, error) {
	if !access.Allowed(actor, access.ActionList, access.ResourcePayment, false) {
		return nil, 0, pkgerrors.NewPermissionError("you may not list payments")
	}

	payments, count, err := u.payments.List(ctx, filter)
	if err != nil {
		u.logger.Error().Err(err).Int64("actor_id", actor.ID).Msg("failed to list payments")
		return nil, 0, pkgerrors.NewInternalError("failed to list payments")
	}

	return payments, count, nil
}

// GetStatus asks the gateway how much of the payment has been received.
// A payment is paid once the received amount covers the requested one.
func (u *PaymentUseCase) GetStatus(ctx context.Context, actor access.Actor, id int64) (dto.StatusResponse, error) {
	if !access.Allowed(actor, access.ActionRetrieve, access.ResourcePayment, false) {
		return dto.StatusResponse{}, pkgerrors.NewPermissionError("you may not view payments")
	}

	payment, err := u.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payerrors.ErrPaymentNotFound) {
			return dto.StatusResponse{}, pkgerrors.NewNotFoundError("payment not found")
		}
		u.logger.Error().Err(err).Int64("payment_id", id).Msg("failed to load payment")
		return dto.StatusResponse{}, pkgerrors.NewInternalError("failed to load payment")
	}

	if payment.PaymentID == nil {
		return dto.StatusResponse{ID: payment.ID, Status: StatusUnprocessed}, nil
	}

	start := time.Now()
	intent, err := u.gateway.RetrieveIntent(ctx, *payment.PaymentID)
	u.metrics.PaymentRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		u.metrics.PaymentGatewayErrors.Inc()
		return dto.StatusResponse{}, err
	}

	status := StatusUnprocessed
	if intent.AmountReceived >= intent.Amount {
		status = StatusPaid
	}

	return dto.StatusResponse{ID: payment.ID, Status: status}, nil
}

func (u *PaymentUseCase) checkTarget(ctx context.Context, courseID, lessonID *int64) error {
	if courseID != nil {
		exists, err := u.targets.CourseExists(ctx, *courseID)
		if err != nil {
			u.logger.Error().Err(err).Int64("course_id", *courseID).Msg("failed to check course existence")
			return pkgerrors.NewInternalError("failed to check course existence")
		}
		if !exists {
			return pkgerrors.NewNotFoundError("course not found")
		}
		return nil
	}

	exists, err := u.targets.LessonExists(ctx, *lessonID)
	if err != nil {
		u.logger.Error().Err(err).Int64("lesson_id", *lessonID).Msg("failed to check lesson existence")
		return pkgerrors.NewInternalError("failed to check lesson existence")
	}
	if !exists {
		return pkgerrors.NewNotFoundError("lesson not found")
	}
	return nil
}

func (u *PaymentUseCase) createIntent(ctx context.Context, amount int64) (string, error) {
	start := time.Now()
	intentID, err := u.gateway.CreateIntent(ctx, amount)
	u.metrics.PaymentRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		u.metrics.PaymentGatewayErrors.Inc()
		return "", err
	}

	u.metrics.PaymentIntentsCreated.Inc()
	return intentID, nil
}
