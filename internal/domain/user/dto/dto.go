package dto

import (
	"time"

	"github.com/courseflow/course-service/internal/domain/user/entities"
)

type UserResponse struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	LastActiveAt time.Time `json:"last_active_at"`
}

func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Role:         user.Role,
		IsActive:     user.IsActive,
		LastActiveAt: user.LastActiveAt,
	}
}
