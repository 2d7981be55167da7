// Package mailer delivers outgoing mail over SMTP. The server only ever
// sends plain-text messages, so the surface is a single Send method.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/Wilovy09/pgmq-test/internal/server/config"
)

// ErrInvalidRecipient is returned when the destination address cannot be
// parsed as an email address.
var ErrInvalidRecipient = errors.New("invalid recipient address")

// seam for tests
var sendMail = smtp.SendMail

// SMTPMailer sends messages through a single SMTP relay. STARTTLS is
// negotiated by net/smtp when the server offers it.
type SMTPMailer struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	fromName  string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		fromName:  cfg.SMTPFromName,
	}
}

// Send delivers a plain-text message to a single recipient. The context is
// accepted for interface symmetry; net/smtp does not support cancellation
// mid-dialogue.
func (m *SMTPMailer) Send(_ context.Context, to, subject, body string) error {

	if _, err := mail.ParseAddress(to); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, to)
	}

	from := mail.Address{Name: m.fromName, Address: m.fromEmail}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from.String())
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := net.JoinHostPort(m.host, m.port)

	// unauthenticated relays (e.g. a local MTA) are allowed
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := sendMail(addr, auth, m.fromEmail, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
