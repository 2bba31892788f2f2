package domain

import (
	"go.uber.org/fx"

	"github.com/courseflow/course-service/internal/domain/course"
	"github.com/courseflow/course-service/internal/domain/notification"
	"github.com/courseflow/course-service/internal/domain/payment"
	"github.com/courseflow/course-service/internal/domain/subscription"
	"github.com/courseflow/course-service/internal/domain/user"
)

var Module = fx.Module(
	"domain",
	notification.Module,
	subscription.Module,
	course.Module,
	payment.Module,
	user.Module,
)
