package http

import (
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/courseflow/course-service/config"
	"github.com/courseflow/course-service/internal/domain/course/deps"
	"github.com/courseflow/course-service/internal/domain/course/dto"
	"github.com/courseflow/course-service/internal/infrastructure/http/middleware"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
	"github.com/courseflow/course-service/pkg/httputil"
)

// Handler serves course and lesson endpoints.
type Handler struct {
	courses  deps.CourseUseCase
	lessons  deps.LessonUseCase
	mapper   *pkgerrors.Mapper
	pageSize int
	logger   zerolog.Logger
}

func NewHandler(
	courses deps.CourseUseCase,
	lessons deps.LessonUseCase,
	mapper *pkgerrors.Mapper,
	serviceCfg *config.ServiceConfig,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		courses:  courses,
		lessons:  lessons,
		mapper:   mapper,
		pageSize: serviceCfg.PageSize,
		logger:   logger,
	}
}

func (h *Handler) ListCourses(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	page := httputil.ParsePage(ctx, h.pageSize)
	courses, count, err := h.courses.ListCourses(ctx, actor, page.Offset(), page.Size)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	results := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		results = append(results, dto.NewCourseResponse(&courses[i]))
	}

	httputil.WriteResponse(ctx, httputil.NewPaginatedResponse(ctx, page, count, results))
}

func (h *Handler) CreateCourse(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	var req dto.CreateCourseRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		httputil.WriteErrorResponse(ctx, "invalid request body", fasthttp.StatusBadRequest)
		return
	}

	course, err := h.courses.CreateCourse(ctx, actor, req)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	httputil.WriteResponseWithStatus(ctx, dto.NewCourseResponse(course), fasthttp.StatusCreated)
}

func (h *Handler) GetCourse(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	id, err := pathID(ctx)
	if err != nil {
		httputil.WriteErrorResponse(ctx, "invalid course id", fasthttp.StatusBadRequest)
		return
	}

	course, subscribed, err := h.courses.GetCourse(ctx, actor, id)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	resp := dto.NewCourseResponse(course)
	resp.IsSubscribed = subscribed

	httputil.WriteResponse(ctx, resp)
}

func (h *Handler) UpdateCourse(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	id, err := pathID(ctx)
	if err != nil {
		httputil.WriteErrorResponse(ctx, "invalid course id", fasthttp.StatusBadRequest)
		return
	}

	var req dto.UpdateCourseRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		httputil.WriteErrorResponse(ctx, "invalid request body", fasthttp.StatusBadRequest)
		return
	}

	course, err := h.courses.UpdateCourse(ctx, actor, id, req)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	httputil.WriteResponse(ctx, dto.NewCourseResponse(course))
}

func (h *Handler) DeleteCourse(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	id, err := pathID(ctx)
	if err != nil {
		httputil.WriteErrorResponse(ctx, "invalid course id", fasthttp.StatusBadRequest)
		return
	}

	if err := h.courses.DeleteCourse(ctx, actor, id); err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (h *Handler) ListLessons(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	page := httputil.ParsePage(ctx, h.pageSize)
	lessons, count, err := h.lessons.ListLessons(ctx, actor, page.Offset(), page.Size)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	results := make([]dto.LessonResponse, 0, len(lessons))
	for i := range lessons {
		results = append(results, dto.NewLessonResponse(&lessons[i]))
	}

	httputil.WriteResponse(ctx, httputil.NewPaginatedResponse(ctx, page, count, results))
}

func (h *Handler) CreateLesson(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	var req dto.CreateLessonRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		httputil.WriteErrorResponse(ctx, "invalid request body", fasthttp.StatusBadRequest)
		return
	}

	lesson, err := h.lessons.CreateLesson(ctx, actor, req)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	httputil.WriteResponseWithStatus(ctx, dto.NewLessonResponse(lesson), fasthttp.StatusCreated)
}

func (h *Handler) GetLesson(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	id, err := pathID(ctx)
	if err != nil {
		httputil.WriteErrorResponse(ctx, "invalid lesson id", fasthttp.StatusBadRequest)
		return
	}

	lesson, err := h.lessons.GetLesson(ctx, actor, id)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	httputil.WriteResponse(ctx, dto.NewLessonResponse(lesson))
}

func (h *Handler) UpdateLesson(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	id, err := pathID(ctx)
	if err != nil {
		httputil.WriteErrorResponse(ctx, "invalid lesson id", fasthttp.StatusBadRequest)
		return
	}

	var req dto.UpdateLessonRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		httputil.WriteErrorResponse(ctx, "invalid request body", fasthttp.StatusBadRequest)
		return
	}

	lesson, err := h.lessons.UpdateLesson(ctx, actor, id, req)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	httputil.WriteResponse(ctx, dto.NewLessonResponse(lesson))
}

func (h *Handler) DeleteLesson(ctx *fasthttp.RequestCtx) {
	actor, ok := middleware.ActorFromCtx(ctx)
	if !ok {
		httputil.WriteErrorResponse(ctx, "authentication required", fasthttp.StatusUnauthorized)
		return
	}

	id, err := pathID(ctx)
	if err != nil {
		httputil.WriteErrorResponse(ctx, "invalid lesson id", fasthttp.StatusBadRequest)
		return
	}

	if err := h.lessons.DeleteLesson(ctx, actor, id); err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}

func pathID(ctx *fasthttp.RequestCtx) (int64, error) {
	raw, _ := ctx.UserValue("id").(string)
	return strconv.ParseInt(raw, 10, 64)
}
