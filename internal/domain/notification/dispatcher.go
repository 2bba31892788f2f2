package notification

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/internal/domain/notification/deps"
	"github.com/courseflow/course-service/internal/domain/notification/dto"
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
)

// Dispatcher fans a course update out to its current subscribers: one
// queued job per subscriber. Enqueueing never blocks on mail transport;
// the worker sends out-of-band.
type Dispatcher struct {
	subscribers deps.SubscriberSource
	queue       deps.JobQueue
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

func NewDispatcher(
	subscribers deps.SubscriberSource,
	queue deps.JobQueue,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		subscribers: subscribers,
		queue:       queue,
		metrics:     m,
		logger:      logger,
	}
}

// Notify enqueues one job per current subscriber of the course. A failed
// enqueue for one recipient does not stop the rest; the first failure is
// returned after all recipients were attempted.
func (d *Dispatcher) Notify(ctx context.Context, courseID int64, courseName string) error {
	emails, err := d.subscribers.GetCourseSubscriberEmails(ctx, courseID)
	if err != nil {
		d.logger.Error().Err(err).
			Int64("course_id", courseID).
			Msg("failed to load course subscribers")
		return err
	}

	if len(emails) == 0 {
		d.logger.Debug().
			Int64("course_id", courseID).
			Msg("course has no subscribers, nothing to dispatch")
		return nil
	}

	var firstErr error
	enqueued := 0

	for _, email := range emails {
		job := dto.Job{CourseName: courseName, Email: email}
		if err := d.queue.Enqueue(ctx, courseID, job); err != nil {
			d.metrics.NotificationErrors.Inc()
			d.logger.Error().Err(err).
				Int64("course_id", courseID).
				Str("email", email).
				Msg("failed to enqueue notification job")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		d.metrics.NotificationsEnqueued.Inc()
		enqueued++
	}

	d.logger.Info().
		Int64("course_id", courseID).
		Str("course_name", courseName).
		Int("enqueued", enqueued).
		Int("subscribers", len(emails)).
		Msg("update notification jobs dispatched")

	return firstErr
}
