package mail

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/config"
)

// Sender delivers a single plain-text message.
type Sender interface {
	Send(to, subject, body string) error
}

type smtpSender struct {
	host     string
	port     string
	username string
	password string
	from     string
	logger   zerolog.Logger
}

// NewSMTPSender creates a Sender backed by an SMTP relay. Without
// credentials configured, sends are logged instead of delivered so local
// environments work without a mail server.
func NewSMTPSender(cfg *config.SMTPConfig, logger zerolog.Logger) Sender {
	return &smtpSender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		logger:   logger,
	}
}

func (s *smtpSender) Send(to, subject, body string) error {
	if s.username == "" || s.password == "" {
		s.logger.Info().
			Str("to", to).
			Str("subject", subject).
			Msg("SMTP credentials not configured, skipping delivery")
		return nil
	}

	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.from, to, subject, body)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
