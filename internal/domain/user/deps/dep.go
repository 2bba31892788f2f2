package deps

import (
	"context"
	"time"

	"github.com/courseflow/course-service/internal/domain/access"
	"github.com/courseflow/course-service/internal/domain/user/entities"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	// DeactivateInactiveSince disables active accounts whose last activity
	// predates the cutoff and returns how many were affected.
	DeactivateInactiveSince(ctx context.Context, cutoff time.Time) (int64, error)
}

type UserUseCase interface {
	GetUser(ctx context.Context, actor access.Actor, id int64) (*entities.User, error)
}
