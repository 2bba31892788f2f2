package entities

import "time"

// PaymentType records how a payment was settled. It is free text up to
// MaxPaymentTypeLen characters; the constants cover the common methods.
type PaymentType string

const (
	PaymentTypeCash     PaymentType = "cash"
	PaymentTypeTransfer PaymentType = "transfer"

	MaxPaymentTypeLen = 30
)

// Payment records a purchase of exactly one course or lesson. PaymentID
// holds the gateway intent reference once one has been opened.
type Payment struct {
	ID        int64       `gorm:"primaryKey" json:"id"`
	UserID    *int64      `json:"user_id"`
	CourseID  *int64      `json:"course_id"`
	LessonID  *int64      `json:"lesson_id"`
	Amount    int64       `gorm:"not null" json:"amount"`
	Type      PaymentType `gorm:"not null" json:"type"`
	PaymentID *string     `json:"payment_id"`
	DatePaid  time.Time   `json:"date_paid"`
}

func (Payment) TableName() string {
	return "payments"
}
