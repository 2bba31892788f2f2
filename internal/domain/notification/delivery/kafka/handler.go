package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/internal/domain/notification/deps"
	"github.com/courseflow/course-service/internal/domain/notification/dto"
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
)

const (
	mailSubject  = "Course Updated"
	mailTemplate = "Hi!\n\nCourse %s has been updated."
)

// JobHandler executes queued notification jobs by sending the update
// email. A failed send is logged and dropped; retry policy belongs to
// the queue runtime, not here.
type JobHandler struct {
	mailer  deps.Mailer
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewJobHandler(mailer deps.Mailer, m *metrics.Metrics, logger zerolog.Logger) *JobHandler {
	return &JobHandler{
		mailer:  mailer,
		metrics: m,
		logger:  logger.With().Str("component", "notification_worker").Logger(),
	}
}

// HandleMessage decodes and executes one queued notification job.
func (h *JobHandler) HandleMessage(ctx context.Context, message []byte) error {
	var job dto.Job
	if err := json.Unmarshal(message, &job); err != nil {
		h.logger.Error().Err(err).Msg("failed to decode notification job")
		return err
	}

	if job.Email == "" {
		h.logger.Warn().
			Str("course_name", job.CourseName).
			Msg("notification job missing recipient, skipping")
		return nil
	}

	body := fmt.Sprintf(mailTemplate, job.CourseName)
	if err := h.mailer.Send(job.Email, mailSubject, body); err != nil {
		h.metrics.EmailSendErrors.Inc()
		h.logger.Error().Err(err).
			Str("email", job.Email).
			Str("course_name", job.CourseName).
			Msg("failed to send update notification email")
		return err
	}

	h.metrics.EmailsSent.Inc()
	h.logger.Info().
		Str("email", job.Email).
		Str("course_name", job.CourseName).
		Msg("update notification email sent")

	return nil
}
