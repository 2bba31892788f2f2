package app

import (
	"go.uber.org/fx"

	"github.com/courseflow/course-service/config"
	"github.com/courseflow/course-service/internal/domain"
	"github.com/courseflow/course-service/internal/infrastructure"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
)

// CreateApp creates the fx application options
func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(
			config.Out,
			pkgerrors.NewMapper,
		),

		infrastructure.Module,
		domain.Module,
	)
}
