package email

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SMTPSender handles sending emails via an SMTP relay (Brevo, Mailpit, ...).
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
	}
}

// Configured checks if the sender has valid SMTP configuration
func (s *SMTPSender) Configured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// Send relays msg and returns the generated Message-ID.
// net/smtp has no context support, so ctx is only checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.NewString()
	raw, err := buildMIME(msg, id, s.host, time.Now())
	if err != nil {
		return "", err
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := net.JoinHostPort(s.host, s.port)
	if err := smtp.SendMail(addr, auth, msg.From, msg.To, raw); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return id, nil
}

// buildMIME renders msg as a multipart/alternative message with text first
// so clients prefer the HTML part.
func buildMIME(msg *Message, id, domain string, now time.Time) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	parts := []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=UTF-8", msg.Text},
		{"text/html; charset=UTF-8", msg.HTML},
	}
	for _, p := range parts {
		if p.content == "" {
			continue
		}
		w, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {p.contentType},
			"Content-Transfer-Encoding": {"8bit"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create mime part: %w", err)
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("failed to write mime part: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close mime writer: %w", err)
	}

	var out bytes.Buffer
	writeHeader := func(key, value string) {
		fmt.Fprintf(&out, "%s: %s\r\n", key, value)
	}
	writeHeader("From", headerValue(msg.From))
	writeHeader("To", headerValue(strings.Join(msg.To, ", ")))
	if msg.ReplyTo != "" {
		writeHeader("Reply-To", headerValue(msg.ReplyTo))
	}
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", headerValue(msg.Subject)))
	writeHeader("Date", now.Format(time.RFC1123Z))
	writeHeader("Message-ID", fmt.Sprintf("<%s@%s>", id, domain))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", mw.Boundary()))
	out.WriteString("\r\n")
	out.Write(body.Bytes())

	return out.Bytes(), nil
}

// headerValue strips line breaks so submitted values cannot inject headers.
func headerValue(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
