package deps

import (
	"context"

	"github.com/courseflow/course-service/internal/domain/notification/dto"
)

// SubscriberSource yields the email addresses subscribed to a course.
type SubscriberSource interface {
	GetCourseSubscriberEmails(ctx context.Context, courseID int64) ([]string, error)
}

// JobQueue hands a notification job to the task queue. The dispatcher's
// contract is satisfied once the job is durably enqueued.
type JobQueue interface {
	Enqueue(ctx context.Context, courseID int64, job dto.Job) error
}

// Mailer delivers a single plain-text message.
type Mailer interface {
	Send(to, subject, body string) error
}
