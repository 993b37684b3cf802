package mailer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/thegreengroup/loanbook/internal/config"
)

// Ensure SMTPMailer implements Mailer
var _ Mailer = (*SMTPMailer)(nil)

// SMTPMailer sends statement emails over authenticated SMTP with STARTTLS.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTP creates a mailer for the given SMTP configuration.
func NewSMTP(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send composes and delivers one statement email.
func (m *SMTPMailer) Send(ctx context.Context, d Delivery) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(d.To...); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(d.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, d.Body)
	if err := msg.AttachReader(d.Filename, bytes.NewReader(d.Document),
		gomail.WithFileContentType(gomail.ContentType("application/pdf"))); err != nil {
		return fmt.Errorf("failed to attach statement: %w", err)
	}

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send statement email: %w", err)
	}
	return nil
}

// Ensure NopMailer implements Mailer
var _ Mailer = (*NopMailer)(nil)

// NopMailer is used when SMTP is not configured. It logs the statement it
// would have sent and reports success.
type NopMailer struct{}

// Send logs the delivery and drops it.
func (NopMailer) Send(_ context.Context, d Delivery) error {
	slog.Info("SMTP not configured, dropping statement email",
		"to", d.To, "subject", d.Subject, "attachment", d.Filename, "bytes", len(d.Document))
	return nil
}
