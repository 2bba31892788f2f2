package business

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/internal/domain/access"
	"github.com/courseflow/course-service/internal/domain/user/deps"
	"github.com/courseflow/course-service/internal/domain/user/entities"
	usererrors "github.com/courseflow/course-service/internal/domain/user/errors"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
)

type UserUseCase struct {
	users  deps.UserRepository
	logger zerolog.Logger
}

func NewUserUseCase(users deps.UserRepository, logger zerolog.Logger) *UserUseCase {
	return &UserUseCase{
		users:  users,
		logger: logger,
	}
}

// GetUser returns a user profile. Any authenticated actor may look up any
// profile; the response carries no credentials.
func (u *UserUseCase) GetUser(ctx context.Context, actor access.Actor, id int64) (*entities.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			return nil, pkgerrors.NewNotFoundError("user not found")
		}
		u.logger.Error().Err(err).Int64("user_id", id).Msg("failed to load user")
		return nil, pkgerrors.NewInternalError("failed to load user")
	}

	return user, nil
}
