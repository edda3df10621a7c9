package notification

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer sends plain-text mail through the configured relay. With no host
// configured it degrades to a no-op that logs what it would have sent, which
// is how this deployment currently runs.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

func NewSMTPMailer(host string, port int, username, password, from string, logger logger.Logger) *SMTPMailer {
	if host == "" {
		logger.Warn("smtp host is empty, mail delivery disabled")
		return &SMTPMailer{dialer: nil, from: from, logger: logger}
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.dialer == nil {
		m.logger.Debug("mail skipped (smtp disabled)",
			logger.String("to", to),
			logger.String("subject", subject),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
