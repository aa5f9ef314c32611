// Package notify sends the digest of upcoming payments and collections by e-mail.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/cashflow"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/config"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/insights"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

var (
	ErrNotConfigured = errors.New("e-mail is not configured, set SMTP_HOST and DIGEST_RECIPIENTS to enable it")
	ErrSend          = errors.New("sending the e-mail failed")
)

// Sender delivers messages. *gomail.Dialer implements it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends notification digests to a fixed list of recipients.
type Mailer struct {
	sender     Sender
	from       string
	recipients []string
	money      insights.Money
}

// NewMailer returns a Mailer delivering through the SMTP server.
func NewMailer(c config.SMTP, money insights.Money) (*Mailer, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	from := c.From
	if from == "" {
		from = c.Username
	}

	return NewMailerWithSender(gomail.NewDialer(c.Host, c.Port, c.Username, c.Password), from, c.Recipients, money), nil
}

// NewMailerWithSender returns a Mailer delivering through sender.
func NewMailerWithSender(sender Sender, from string, recipients []string, money insights.Money) *Mailer {
	return &Mailer{
		sender:     sender,
		from:       from,
		recipients: recipients,
		money:      money,
	}
}

// Enabled reports if mails can be sent.
func (m *Mailer) Enabled() bool {
	return m != nil && m.sender != nil && len(m.recipients) > 0
}

// SendDigest mails the notifications as of today. Nothing is sent when there
// are no notifications. It returns the number of notifications sent.
func (m *Mailer) SendDigest(ctx context.Context, today types.Date, notifications []cashflow.Notification) (int, error) {
	if !m.Enabled() {
		return 0, ErrNotConfigured
	}

	if len(notifications) == 0 {
		log.Debug().Str("today", today.String()).Msg("No notifications, digest skipped")
		return 0, nil
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	body, err := m.body(today, notifications)
	if err != nil {
		return 0, err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.recipients...)
	msg.SetHeader("Subject", subject(today, notifications))
	msg.SetBody("text/html", body)

	if err := m.sender.DialAndSend(msg); err != nil {
		log.Error().Err(err).Strs("recipients", m.recipients).Msg("Digest e-mail")
		return 0, fmt.Errorf("%w: %w", ErrSend, err)
	}

	log.Info().Int("notifications", len(notifications)).Strs("recipients", m.recipients).Msg("Digest sent")
	return len(notifications), nil
}
