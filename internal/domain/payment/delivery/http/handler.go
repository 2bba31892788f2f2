package http

import (
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/courseflow/course-service/config"
	"github.com/courseflow/course-service/internal/domain/payment/deps"
	"github.com/courseflow/course-service/internal/domain/payment/dto"
	"github.com/courseflow/course-service/internal/domain/payment/entities"
	"github.com/courseflow/course-service/internal/infrastructure/http/middleware"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
	"github.com/courseflow/course-service/pkg/httputil"
)

type Handler struct {
	payments deps.PaymentUseCase
	mapper   *pkgerrors.Mapper
	pageSize int
	logger   zerolog.Logger
}

func NewHandler(
	payments deps.PaymentUseCase,
	mapper *pkgerrors.Mapper,
	serviceCfg *config.ServiceConfig,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		payments: payments,
		mapper:   mapper,
		pageSize: serviceCfg.PageSize,
		logger:   logger,
	}
}

// ListPayments supports course, lesson and type filters plus ordering by
// date_paid or -date_paid.
func (h *Handler) ListPayments(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	page := httputil.ParsePage(ctx, h.pageSize)
	filter, err := parseFilter(ctx)
	if err != nil {
		httputil.WriteErrorResponse(ctx, err.Error(), fasthttp.StatusBadRequest)
		return
	}
	filter.Offset = page.Offset()
	filter.Limit = page.Size

	payments, count, err := h.payments.ListPayments(ctx, actor, filter)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	results := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		results = append(results, dto.NewPaymentResponse(&payments[i]))
	}

	httputil.WriteResponse(ctx, httputil.NewPaginatedResponse(ctx, page, count, results))
}

func (h *Handler) CreatePayment(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	var req dto.CreatePaymentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		httputil.WriteErrorResponse(ctx, "invalid request body", fasthttp.StatusBadRequest)
		return
	}

	payment, err := h.payments.CreatePayment(ctx, actor, req)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	httputil.WriteResponseWithStatus(ctx, dto.NewPaymentResponse(payment), fasthttp.StatusCreated)
}

func (h *Handler) GetStatus(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	raw, _ := ctx.UserValue("id").(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httputil.WriteErrorResponse(ctx, "invalid payment id", fasthttp.StatusBadRequest)
		return
	}

	status, err := h.payments.GetStatus(ctx, actor, id)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	httputil.WriteResponse(ctx, status)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}

func parseFilter(ctx *fasthttp.RequestCtx) (deps.ListFilter, error) {
	var filter deps.ListFilter
	args := ctx.QueryArgs()

	if raw := string(args.Peek("course")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, pkgerrors.NewValidationError("course must be an integer")
		}
		filter.CourseID = &id
	}

	if raw := string(args.Peek("lesson")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, pkgerrors.NewValidationError("lesson must be an integer")
		}
		filter.LessonID = &id
	}

	if raw := string(args.Peek("type")); raw != "" {
		paymentType := entities.PaymentType(raw)
		filter.Type = &paymentType
	}

	switch ordering := string(args.Peek("ordering")); ordering {
	case "", "-date_paid":
	case "date_paid":
		filter.Ascending = true
	default:
		return filter, pkgerrors.NewValidationErrorf("unsupported ordering %q", ordering)
	}

	return filter, nil
}
