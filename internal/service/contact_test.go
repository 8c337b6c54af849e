package service

import (
	"context"
	"mime"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/config"
	"github.com/pawarnirmal/portfolio/internal/domain"
)

func TestContactService_Submit(t *testing.T) {
	r := setupRepos(t)
	woke := 0
	svc := NewContactService(r.messages, func() { woke++ }, zap.NewNop())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	m, err := svc.Submit(context.Background(), domain.ContactForm{
		Name:    "  Ada Lovelace ",
		Email:   "ada@example.com",
		Message: "\nWould love to chat.\n",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, woke)
	assert.Len(t, m.ID, 36)
	assert.Equal(t, "Ada Lovelace", m.Name)
	assert.Equal(t, "Would love to chat.", m.Body)

	stored, err := r.messages.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MessageStatusPending, stored.Status)
	assert.Zero(t, stored.Attempts)
	assert.True(t, stored.NextAttemptAt.Equal(now))
}

func TestContactService_SubmitInvalid(t *testing.T) {
	r := setupRepos(t)
	svc := NewContactService(r.messages, nil, zap.NewNop())

	tests := []struct {
		name    string
		form    domain.ContactForm
		wantMsg string
	}{
		{
			name:    "blank name",
			form:    domain.ContactForm{Name: "   ", Email: "a@example.com", Message: "hi"},
			wantMsg: "name is required",
		},
		{
			name:    "bad email",
			form:    domain.ContactForm{Name: "A", Email: "not-an-email", Message: "hi"},
			wantMsg: "email is not a valid address",
		},
		{
			name:    "long message",
			form:    domain.ContactForm{Name: "A", Email: "a@example.com", Message: strings.Repeat("x", 5001)},
			wantMsg: "message must be at most 5000 characters",
		},
		{
			name:    "long name",
			form:    domain.ContactForm{Name: strings.Repeat("n", 101), Email: "a@example.com", Message: "hi"},
			wantMsg: "name must be at most 100 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.form)
			require.ErrorIs(t, err, domain.ErrInvalidMessage)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	msgs, err := r.messages.List(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestCompose(t *testing.T) {
	m := &domain.Message{
		ID:    "abc",
		Name:  "Eve\r\nBcc: victim@example.com",
		Email: "eve@example.com",
		Body:  "line one\nline two",
	}

	raw := string(Compose("me@example.com", "inbox@example.com", m))

	assert.Contains(t, raw, "Subject: Portfolio Contact: Eve Bcc: victim@example.com\r\n")
	assert.Contains(t, raw, "Reply-To: eve@example.com\r\n")
	assert.Contains(t, raw, "From: me@example.com\r\n")
	assert.NotContains(t, raw, "\r\nBcc:")
	assert.Contains(t, raw, "Name: Eve Bcc: victim@example.com\r\n")
	assert.Contains(t, raw, "line one\r\nline two")
}

func TestCompose_BodyLineEndings(t *testing.T) {
	m := &domain.Message{
		ID:    "abc",
		Name:  "Ann",
		Email: "ann@example.com",
		Body:  "one\r\ntwo\rthree\nfour",
	}

	raw := string(Compose("me@example.com", "inbox@example.com", m))

	assert.Contains(t, raw, "one\r\ntwo\r\nthree\r\nfour")
	assert.NotContains(t, raw, "\r\r")
}

func TestCompose_EncodesNonASCIISubject(t *testing.T) {
	m := &domain.Message{ID: "abc", Name: "José Müller", Email: "jose@example.com", Body: "hola"}

	raw := string(Compose("me@example.com", "inbox@example.com", m))

	subject := "Subject: " + mime.QEncoding.Encode("utf-8", "Portfolio Contact: José Müller") + "\r\n"
	assert.Contains(t, raw, subject)
	assert.Contains(t, raw, "Subject: =?utf-8?q?")

	decoded, err := new(mime.WordDecoder).DecodeHeader(mime.QEncoding.Encode("utf-8", "Portfolio Contact: José Müller"))
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Contact: José Müller", decoded)
}

func TestSMTPMailer_Disabled(t *testing.T) {
	mailer := NewSMTPMailer(config.SMTPConfig{Host: "localhost", Port: "25"})
	assert.False(t, mailer.Enabled())

	err := mailer.Send(context.Background(), &domain.Message{ID: "x"})
	assert.ErrorIs(t, err, domain.ErrMailerDisabled)
}

func TestSMTPMailer_Send(t *testing.T) {
	mailer := NewSMTPMailer(config.SMTPConfig{
		Host: "smtp.example.com",
		Port: "587",
		User: "me@example.com",
		Pass: "secret",
	})

	var (
		gotAddr, gotFrom string
		gotTo            []string
		gotMsg           []byte
	)
	mailer.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := mailer.Send(context.Background(), &domain.Message{ID: "id-1", Name: "Ada", Email: "ada@example.com", Body: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "me@example.com", gotFrom)
	assert.Equal(t, []string{"me@example.com"}, gotTo, "falls back to the SMTP user's mailbox")
	assert.Contains(t, string(gotMsg), "Subject: Portfolio Contact: Ada")
}
