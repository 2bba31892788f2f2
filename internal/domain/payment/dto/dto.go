package dto

import (
	"time"

	"github.com/courseflow/course-service/internal/domain/payment/entities"
)

type CreatePaymentRequest struct {
	CourseID *int64 `json:"course_id"`
	LessonID *int64 `json:"lesson_id"`
	Amount   int64  `json:"amount"`
	Type     string `json:"type"`
}

type PaymentResponse struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"user_id"`
	CourseID  *int64    `json:"course_id"`
	LessonID  *int64    `json:"lesson_id"`
	Amount    int64     `json:"amount"`
	Type      string    `json:"type"`
	PaymentID *string   `json:"payment_id"`
	DatePaid  time.Time `json:"date_paid"`
}

// StatusResponse reports the gateway-side state of a payment.
type StatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func NewPaymentResponse(payment *entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID,
		UserID:    payment.UserID,
		CourseID:  payment.CourseID,
		LessonID:  payment.LessonID,
		Amount:    payment.Amount,
		Type:      string(payment.Type),
		PaymentID: payment.PaymentID,
		DatePaid:  payment.DatePaid,
	}
}
