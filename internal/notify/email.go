package notify

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"crm-service/config"

	gopkgmail "gopkg.in/gomail.v2"
)

var reminderBody = template.Must(template.New(reminderTemplate).Parse(
	`Hello,

this is a reminder about your order {{.OrderID}} from {{.OrderDate}}.
Total amount: {{.TotalAmount}}.

Thank you for shopping with us.
`))

type dialer interface {
	DialAndSend(m ...*gopkgmail.Message) error
}

type EmailSender struct {
	from   string
	dialer dialer
}

func NewEmailSender(cfg config.Notify) *EmailSender {
	d := gopkgmail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	d.SSL = cfg.SMTPPort == 465
	return &EmailSender{from: cfg.SMTPFrom, dialer: d}
}

func (s *EmailSender) SendReminder(_ context.Context, r Reminder) error {
	m, err := s.buildMessage(r)
	if err != nil {
		return err
	}
	return s.dialer.DialAndSend(m)
}

func (s *EmailSender) buildMessage(r Reminder) (*gopkgmail.Message, error) {
	var buf bytes.Buffer
	if err := reminderBody.Execute(&buf, r); err != nil {
		return nil, fmt.Errorf("render plain: %w", err)
	}

	m := gopkgmail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", r.CustomerEmail)
	m.SetHeader("Subject", reminderSubject)
	m.SetBody("text/plain", buf.String())
	return m, nil
}

func (s *EmailSender) Close() error { return nil }
