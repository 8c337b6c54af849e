package service

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/pawarnirmal/portfolio/internal/config"
	"github.com/pawarnirmal/portfolio/internal/domain"
)

// Mailer delivers a contact message to the site owner.
type Mailer interface {
	Send(ctx context.Context, m *domain.Message) error
}

// SMTPMailer sends mail through an authenticated SMTP relay.
type SMTPMailer struct {
	cfg  config.SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer creates a mailer for cfg. When cfg.To is empty mail goes to the
// SMTP user's own mailbox.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

// Enabled reports whether credentials are configured.
func (m *SMTPMailer) Enabled() bool {
	return m.cfg.Enabled()
}

// Send implements Mailer. net/smtp has no context support, so ctx is only
// checked before dialing.
func (m *SMTPMailer) Send(ctx context.Context, msg *domain.Message) error {
	if !m.cfg.Enabled() {
		return domain.ErrMailerDisabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	body := Compose(m.cfg.User, m.cfg.To, msg)
	if err := m.send(m.cfg.Addr(), auth, m.cfg.User, []string{m.cfg.To}, body); err != nil {
		return fmt.Errorf("send mail to %s: %w", m.cfg.Addr(), err)
	}
	return nil
}

// Compose builds the RFC 5322 message for a contact submission. Replying goes
// straight to the visitor.
func Compose(from, to string, m *domain.Message) []byte {
	name := headerSafe(m.Name)
	email := headerSafe(m.Email)

	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, normalizeNewlines(m.Body))

	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", "Portfolio Contact: "+name) + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("Reply-To: " + email + "\r\n")
	b.WriteString("Message-ID: <" + m.ID + "@portfolio>\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

func normalizeNewlines(s string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)
}

// headerSafe drops line breaks so visitor input cannot add headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(s)
}
