package http

import (
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/courseflow/course-service/internal/domain/subscription/deps"
	"github.com/courseflow/course-service/internal/domain/subscription/dto"
	"github.com/courseflow/course-service/internal/infrastructure/http/middleware"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
	"github.com/courseflow/course-service/pkg/httputil"
)

type Handler struct {
	subs   deps.SubscriptionUseCase
	mapper *pkgerrors.Mapper
	logger zerolog.Logger
}

func NewHandler(subs deps.SubscriptionUseCase, mapper *pkgerrors.Mapper, logger zerolog.Logger) *Handler {
	return &Handler{
		subs:   subs,
		mapper: mapper,
		logger: logger,
	}
}

func (h *Handler) Subscribe(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	var req dto.SubscribeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		httputil.WriteErrorResponse(ctx, "invalid request body", fasthttp.StatusBadRequest)
		return
	}

	sub, err := h.subs.Subscribe(ctx, actor, req.CourseID)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	httputil.WriteResponseWithStatus(ctx, dto.NewSubscriptionResponse(sub), fasthttp.StatusCreated)
}

func (h *Handler) Unsubscribe(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	raw, _ := ctx.UserValue("id").(string)
	courseID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httputil.WriteErrorResponse(ctx, "invalid course id", fasthttp.StatusBadRequest)
		return
	}

	if err := h.subs.Unsubscribe(ctx, actor, courseID); err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}
