package email

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMIME(t *testing.T) {
	msg := &Message{
		From:    "onboarding@resend.dev",
		To:      []string{"contact@example.com"},
		ReplyTo: "jane@example.com",
		Subject: "New Contact Form Submission from Jane\r\nBcc: evil@example.com",
		HTML:    "<p>Hello</p>",
		Text:    "Hello",
	}

	raw, err := buildMIME(msg, "abc123", "smtp.example.com", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)

	parsed, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)

	assert.Equal(t, "<abc123@smtp.example.com>", parsed.Header.Get("Message-ID"))
	assert.Equal(t, "jane@example.com", parsed.Header.Get("Reply-To"))
	assert.Empty(t, parsed.Header.Get("Bcc"))

	subject, err := new(mime.WordDecoder).DecodeHeader(parsed.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "New Contact Form Submission from Jane  Bcc: evil@example.com", subject)

	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)

	mr := multipart.NewReader(parsed.Body, params["boundary"])
	var types, bodies []string
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		b, err := io.ReadAll(p)
		require.NoError(t, err)
		types = append(types, p.Header.Get("Content-Type"))
		bodies = append(bodies, string(b))
	}
	assert.Equal(t, []string{"text/plain; charset=UTF-8", "text/html; charset=UTF-8"}, types)
	assert.Equal(t, []string{"Hello", "<p>Hello</p>"}, bodies)
}

func TestSMTPSenderConfigured(t *testing.T) {
	assert.False(t, NewSMTPSender(SMTPConfig{Host: "smtp.example.com"}).Configured())

	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "u", Password: "p"})
	assert.True(t, s.Configured())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Send(ctx, &Message{})
	assert.ErrorIs(t, err, context.Canceled)
}
