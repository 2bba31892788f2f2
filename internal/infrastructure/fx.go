package infrastructure

import (
	"go.uber.org/fx"

	"github.com/courseflow/course-service/internal/infrastructure/database"
	httpfx "github.com/courseflow/course-service/internal/infrastructure/http"
	"github.com/courseflow/course-service/internal/infrastructure/kafka"
	"github.com/courseflow/course-service/internal/infrastructure/logger"
	"github.com/courseflow/course-service/internal/infrastructure/mail"
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
	"github.com/courseflow/course-service/internal/infrastructure/stripe"
)

// Module aggregates all infrastructure modules
var Module = fx.Module("infrastructure",
	logger.Module,
	database.Module,
	metrics.Module,
	kafka.Module,
	mail.Module,
	stripe.Module,
	httpfx.Module,
)
