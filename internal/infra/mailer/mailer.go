package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/wneessen/go-mail"
)

// Mailer sends the outgoing emails of the back office over SMTP.
type Mailer struct {
	client   *mail.Client
	from     string
	fromName string
	logger   *slog.Logger
}

func New(cfg config.MailConfig, logger *slog.Logger) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "init smtp client")
	}
	return &Mailer{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
		logger:   logger,
	}, nil
}

func (m *Mailer) SendInvoiceIssued(ctx context.Context, p shared.InvoiceIssuedPayload) error {
	msg, err := InvoiceIssuedMessage(m.from, m.fromName, p)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "send invoice email")
	}
	m.logger.Info("invoice email sent", "invoice", p.Number, "to", p.Email)
	return nil
}

// InvoiceIssuedMessage renders the plain-text invoice notice.
func InvoiceIssuedMessage(from, fromName string, p shared.InvoiceIssuedPayload) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(fromName, from); err != nil {
		return nil, errs.Wrap(err, "set from address")
	}
	if err := msg.To(p.Email); err != nil {
		return nil, errs.Wrap(err, "set recipient")
	}
	msg.Subject("Invoice " + p.Number)

	var body strings.Builder
	fmt.Fprintf(&body, "Dear %s,\n\n", p.ClientName)
	fmt.Fprintf(&body, "Thank you for staying with us. Invoice %s was issued on %s.\n", p.Number, p.IssuedOn)
	fmt.Fprintf(&body, "Total charged: %s\n\n", p.Total)
	body.WriteString("Kind regards,\n")
	body.WriteString(fromName)
	msg.SetBodyString(mail.TypeTextPlain, body.String())
	return msg, nil
}
