package dto

import (
	"time"

	"github.com/courseflow/course-service/internal/domain/subscription/entities"
)

type SubscribeRequest struct {
	CourseID int64 `json:"course_id"`
}

type SubscriptionResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CourseID  int64     `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSubscriptionResponse(sub *entities.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        sub.ID,
		UserID:    sub.UserID,
		CourseID:  sub.CourseID,
		CreatedAt: sub.CreatedAt,
	}
}
