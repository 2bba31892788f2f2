package http

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/courseflow/course-service/internal/domain/user/deps"
	"github.com/courseflow/course-service/internal/domain/user/dto"
	"github.com/courseflow/course-service/internal/infrastructure/http/middleware"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
	"github.com/courseflow/course-service/pkg/httputil"
)

type Handler struct {
	users  deps.UserUseCase
	mapper *pkgerrors.Mapper
	logger zerolog.Logger
}

func NewHandler(users deps.UserUseCase, mapper *pkgerrors.Mapper, logger zerolog.Logger) *Handler {
	return &Handler{
		users:  users,
		mapper: mapper,
		logger: logger,
	}
}

func (h *Handler) GetUser(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	raw, _ := ctx.UserValue("id").(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httputil.WriteErrorResponse(ctx, "invalid user id", fasthttp.StatusBadRequest)
		return
	}

	user, err := h.users.GetUser(ctx, actor, id)
	if err != nil {
		status, message := h.mapper.MapErrorToHTTP(err)
		httputil.WriteErrorResponse(ctx, message, status)
		return
	}

	httputil.WriteResponse(ctx, dto.NewUserResponse(user))
}
