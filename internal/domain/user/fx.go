package user

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	userhttp "github.com/courseflow/course-service/internal/domain/user/delivery/http"
	"github.com/courseflow/course-service/internal/domain/user/deps"
	"github.com/courseflow/course-service/internal/domain/user/repository/postgres"
	"github.com/courseflow/course-service/internal/domain/user/usecase/business"
	"github.com/courseflow/course-service/internal/domain/user/workers"
	"github.com/courseflow/course-service/internal/infrastructure/http/server"
	"github.com/courseflow/course-service/pkg/httputil"
)

var Module = fx.Module(
	"user",
	fx.Provide(
		postgres.NewUserRepository,
		NewUserUseCaseFx,
		userhttp.NewHandler,
		userhttp.NewRouter,
		workers.NewDeactivationChecker,
	),
	fx.Invoke(
		registerRoutes,
		registerDeactivationChecker,
	),
)

func NewUserUseCaseFx(users deps.UserRepository, logger zerolog.Logger) deps.UserUseCase {
	return business.NewUserUseCase(users, logger)
}

func registerRoutes(srv *server.Server, rt *userhttp.Router, auth httputil.Middleware) {
	rt.RegisterRoutes(srv.Router, auth)
}

func registerDeactivationChecker(lc fx.Lifecycle, checker *workers.DeactivationChecker) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			checker.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			checker.Stop()
			return nil
		},
	})
}
