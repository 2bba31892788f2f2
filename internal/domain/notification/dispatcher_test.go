package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/internal/domain/notification/dto"
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
)

type mockSubscriberSource struct {
	emails []string
	err    error
}

func (m *mockSubscriberSource) GetCourseSubscriberEmails(_ context.Context, _ int64) ([]string, error) {
	return m.emails, m.err
}

type mockJobQueue struct {
	jobs    []dto.Job
	failFor map[string]error
}

func (m *mockJobQueue) Enqueue(_ context.Context, _ int64, job dto.Job) error {
	if err, ok := m.failFor[job.Email]; ok {
		return err
	}
	m.jobs = append(m.jobs, job)
	return nil
}

func TestDispatcherEnqueuesOneJobPerSubscriber(t *testing.T) {
	source := &mockSubscriberSource{emails: []string{"a@example.com", "b@example.com", "c@example.com"}}
	queue := &mockJobQueue{}

	d := NewDispatcher(source, queue, metrics.GetDefaultMetrics(), zerolog.Nop())

	if err := d.Notify(context.Background(), 7, "Algebra"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	if len(queue.jobs) != 3 {
		t.Fatalf("enqueued %d jobs, want 3", len(queue.jobs))
	}
	for i, job := range queue.jobs {
		if job.CourseName != "Algebra" {
			t.Errorf("job %d course name = %q, want Algebra", i, job.CourseName)
		}
		if job.Email != source.emails[i] {
			t.Errorf("job %d email = %q, want %q", i, job.Email, source.emails[i])
		}
	}
}

func TestDispatcherNoSubscribers(t *testing.T) {
	queue := &mockJobQueue{}
	d := NewDispatcher(&mockSubscriberSource{}, queue, metrics.GetDefaultMetrics(), zerolog.Nop())

	if err := d.Notify(context.Background(), 7, "Algebra"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if len(queue.jobs) != 0 {
		t.Errorf("enqueued %d jobs, want 0", len(queue.jobs))
	}
}

func TestDispatcherSubscriberLoadFailure(t *testing.T) {
	wantErr := errors.New("db down")
	d := NewDispatcher(&mockSubscriberSource{err: wantErr}, &mockJobQueue{}, metrics.GetDefaultMetrics(), zerolog.Nop())

	if err := d.Notify(context.Background(), 7, "Algebra"); !errors.Is(err, wantErr) {
		t.Errorf("Notify() error = %v, want %v", err, wantErr)
	}
}

func TestDispatcherContinuesPastEnqueueFailure(t *testing.T) {
	source := &mockSubscriberSource{emails: []string{"a@example.com", "b@example.com", "c@example.com"}}
	wantErr := errors.New("broker unreachable")
	queue := &mockJobQueue{failFor: map[string]error{"b@example.com": wantErr}}

	d := NewDispatcher(source, queue, metrics.GetDefaultMetrics(), zerolog.Nop())

	if err := d.Notify(context.Background(), 7, "Algebra"); !errors.Is(err, wantErr) {
		t.Fatalf("Notify() error = %v, want %v", err, wantErr)
	}

	// The failing recipient is skipped, the rest still get their jobs.
	if len(queue.jobs) != 2 {
		t.Fatalf("enqueued %d jobs, want 2", len(queue.jobs))
	}
	if queue.jobs[0].Email != "a@example.com" || queue.jobs[1].Email != "c@example.com" {
		t.Errorf("unexpected recipients: %+v", queue.jobs)
	}
}
