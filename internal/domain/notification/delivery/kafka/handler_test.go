package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/internal/infrastructure/metrics"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type mockMailer struct {
	sent []sentMail
	err  error
}

func (m *mockMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func TestHandleMessageSendsUpdateMail(t *testing.T) {
	mailer := &mockMailer{}
	h := NewJobHandler(mailer, metrics.GetDefaultMetrics(), zerolog.Nop())

	msg := []byte(`{"course_name":"Algebra","email":"student@example.com"}`)
	if err := h.HandleMessage(context.Background(), msg); err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(mailer.sent))
	}
	mail := mailer.sent[0]
	if mail.to != "student@example.com" {
		t.Errorf("to = %q", mail.to)
	}
	if mail.subject != "Course Updated" {
		t.Errorf("subject = %q", mail.subject)
	}
	if mail.body != "Hi!\n\nCourse Algebra has been updated." {
		t.Errorf("body = %q", mail.body)
	}
}

func TestHandleMessageInvalidPayload(t *testing.T) {
	h := NewJobHandler(&mockMailer{}, metrics.GetDefaultMetrics(), zerolog.Nop())

	if err := h.HandleMessage(context.Background(), []byte("not json")); err == nil {
		t.Error("expected decode error")
	}
}

func TestHandleMessageMissingRecipient(t *testing.T) {
	mailer := &mockMailer{}
	h := NewJobHandler(mailer, metrics.GetDefaultMetrics(), zerolog.Nop())

	// Jobs without a recipient are dropped, not retried.
	msg := []byte(`{"course_name":"Algebra","email":""}`)
	if err := h.HandleMessage(context.Background(), msg); err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Errorf("sent %d mails, want 0", len(mailer.sent))
	}
}

func TestHandleMessageSendFailure(t *testing.T) {
	wantErr := errors.New("smtp unreachable")
	h := NewJobHandler(&mockMailer{err: wantErr}, metrics.GetDefaultMetrics(), zerolog.Nop())

	msg := []byte(`{"course_name":"Algebra","email":"student@example.com"}`)
	if err := h.HandleMessage(context.Background(), msg); !errors.Is(err, wantErr) {
		t.Errorf("HandleMessage() error = %v, want %v", err, wantErr)
	}
}
