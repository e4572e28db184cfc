package service

import (
	"fmt"
	"time"

	"justbookit/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer is the outbound notification boundary. Delivery is best-effort:
// callers log failures and carry on, a lost confirmation never fails the
// booking that triggered it.
type Mailer interface {
	Send(subject, body string, to ...string) error
}

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(subject, body string, to ...string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(msg)
}

// LogMailer writes mail to the application log instead of dispatching it.
// Used when no SMTP host is configured (local development, tests).
type LogMailer struct {
	log *logrus.Logger
}

func NewLogMailer(log *logrus.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(subject, body string, to ...string) error {
	m.log.Infof("mail to %v: %s :: %s", to, subject, body)
	return nil
}

// BookingConfirmationSubject builds the subject line for a booking
// confirmation mail.
func BookingConfirmationSubject(serviceName string) string {
	return fmt.Sprintf("Booking Confirmation for %s", serviceName)
}

// BookingConfirmationBody builds the body for a booking confirmation mail.
func BookingConfirmationBody(serviceName string, date time.Time) string {
	return fmt.Sprintf("Your booking for %s on %s has been confirmed.", serviceName, date.Format(time.RFC1123))
}
