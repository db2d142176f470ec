package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Alexandra1624/infra-sp2/pkg/utils"

	"go.uber.org/zap"
)

// Mailer delivers a single message out of band. Implementations must treat a
// returned error as "nothing was delivered".
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New picks the SMTP mailer when a host is configured and falls back to
// logging the message otherwise, so local setups work without a mail server.
func New(config utils.EmailConfig, log *zap.Logger) Mailer {
	if config.Host == "" {
		return &LogMailer{log: log.With(zap.String("mailer", "log"))}
	}
	return &SMTPMailer{config: config, log: log.With(zap.String("mailer", "smtp"))}
}

// SMTPMailer sends plain-text mail over SMTP with PLAIN auth.
type SMTPMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	msg := strings.Join([]string{
		"From: " + m.config.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg)); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}

// LogMailer writes the message to the application log instead of sending it.
type LogMailer struct {
	log *zap.Logger
}

func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	m.log.Info("Email delivery (log only)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
