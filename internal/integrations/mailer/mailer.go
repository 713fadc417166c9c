package mailer

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer отправка писем клиентам
type Mailer struct {
	sender Sender
	cfg    Config
	log    Logger
}

// New создает отправителя поверх SendGrid
func New(apiKey string, cfg Config, log Logger) *Mailer {
	return NewWithSender(sendgrid.NewSendClient(apiKey), cfg, log)
}

// NewWithSender создает отправителя с произвольным транспортом
func NewWithSender(sender Sender, cfg Config, log Logger) *Mailer {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	cfg.AppURL = strings.TrimRight(cfg.AppURL, "/")
	return &Mailer{sender: sender, cfg: cfg, log: log}
}

// SendConfirmation отправляет письмо о подтвержденной записи
func (m *Mailer) SendConfirmation(ctx context.Context, c *Confirmation) error {
	if c.To == "" {
		return ErrNoRecipient
	}

	text, html, err := m.render(c)
	if err != nil {
		return err
	}

	from := mail.NewEmail(m.cfg.FromName, m.cfg.FromEmail)
	to := mail.NewEmail(c.ClientName, c.To)
	msg := mail.NewSingleEmail(from, confirmationSubject, to, text, html)

	resp, err := m.sender.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d: %s", ErrDelivery, resp.StatusCode, resp.Body)
	}

	m.log.Info("Confirmation email sent to %s", c.To)
	return nil
}

func (m *Mailer) render(c *Confirmation) (string, string, error) {
	start := c.StartAt.In(m.cfg.Location)
	end := c.EndAt.In(m.cfg.Location)

	v := view{
		ClientName:   c.ClientName,
		ServiceName:  c.ServiceName,
		Date:         longDateES(start),
		Start:        clockES(start),
		End:          clockES(end),
		AdvisorName:  c.AdvisorName,
		Credentials:  c.Credentials,
		To:           c.To,
		DashboardURL: m.cfg.AppURL + "/dashboard/cliente",
		SignInURL:    m.cfg.AppURL + "/sign-in",
	}
	if v.ClientName == "" {
		v.ClientName = "Cliente"
	}
	if v.ServiceName == "" {
		v.ServiceName = "Servicio"
	}
	if v.AdvisorName == "" {
		v.AdvisorName = "Asesor"
	}

	var text, html bytes.Buffer
	if err := confirmationText.Execute(&text, v); err != nil {
		return "", "", fmt.Errorf("%w: text: %v", ErrRender, err)
	}
	if err := confirmationHTML.Execute(&html, v); err != nil {
		return "", "", fmt.Errorf("%w: html: %v", ErrRender, err)
	}
	return text.String(), html.String(), nil
}
