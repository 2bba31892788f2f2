package http

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/courseflow/course-service/config"
	"github.com/courseflow/course-service/internal/infrastructure/http/middleware"
	"github.com/courseflow/course-service/internal/infrastructure/http/server"
	"github.com/courseflow/course-service/pkg/httputil"
)

// Module provides HTTP server for fx DI
var Module = fx.Module("http",
	fx.Provide(
		NewServerFx,
		NewAuthMiddleware,
	),
)

// NewAuthMiddleware builds the bearer-token middleware shared by all routes
func NewAuthMiddleware(authCfg *config.AuthConfig) httputil.Middleware {
	return middleware.Authenticate(authCfg.JWTSecret)
}

// NewServerFx creates HTTP server with lifecycle hooks for fx DI
func NewServerFx(
	lc fx.Lifecycle,
	serviceCfg *config.ServiceConfig,
	logger zerolog.Logger,
) *server.Server {
	srv := server.NewServer(serviceCfg.Name, serviceCfg.Port, logger)

	// Register Prometheus metrics endpoint
	srv.RegisterMetrics()
	srv.RegisterHealth()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}
