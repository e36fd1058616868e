package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketing-site-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContactEmail(t *testing.T) {
	t.Run("Should omit phone section when no phone given", func(t *testing.T) {
		html, text, err := email.RenderContactEmail(email.ContactEmailData{
			Name:        "Jane Doe",
			Email:       "jane@example.com",
			Message:     "Hello",
			CompanyName: "Acme",
		})
		require.NoError(t, err)

		assert.NotContains(t, html, "Phone:")
		assert.Contains(t, html, `href="mailto:jane@example.com"`)
		assert.Contains(t, html, "Jane Doe")
		assert.Contains(t, html, "Acme website contact form")

		assert.Equal(t, "New Contact Form Submission\n\n"+
			"Name: Jane Doe\n"+
			"Email: jane@example.com\n\n"+
			"Message:\nHello\n\n"+
			"---\nThis email was sent from the Acme website contact form.", text)
	})

	t.Run("Should include phone line when given", func(t *testing.T) {
		html, text, err := email.RenderContactEmail(email.ContactEmailData{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Phone:   "+1 555 0100",
			Message: "Hello",
		})
		require.NoError(t, err)

		assert.Contains(t, html, "Phone:")
		assert.Contains(t, html, "555 0100")
		assert.Contains(t, text, "Email: jane@example.com\nPhone: +1 555 0100\n\nMessage:")
	})

	t.Run("Should escape markup and keep message whitespace", func(t *testing.T) {
		html, text, err := email.RenderContactEmail(email.ContactEmailData{
			Name:    `<script>alert("x")</script>`,
			Email:   "jane@example.com",
			Message: "line one\n    indented <b>bold</b>",
		})
		require.NoError(t, err)

		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
		assert.Contains(t, html, "line one\n    indented &lt;b&gt;bold&lt;/b&gt;")
		assert.Contains(t, html, "white-space: pre-wrap")

		// plain text is not HTML and is left verbatim
		assert.Contains(t, text, "line one\n    indented <b>bold</b>")
	})
}

func TestContactSubject(t *testing.T) {
	assert.Equal(t, "New Contact Form Submission from Jane Doe", email.ContactSubject("Jane Doe"))
}

func TestResendSender(t *testing.T) {
	msg := &email.Message{
		From:    "onboarding@resend.dev",
		To:      []string{"contact@example.com"},
		ReplyTo: "jane@example.com",
		Subject: "New Contact Form Submission from Jane Doe",
		HTML:    "<p>Hello</p>",
		Text:    "Hello",
	}

	t.Run("Should refuse to send without an API key", func(t *testing.T) {
		s, err := email.NewResendSender("")
		require.NoError(t, err)

		assert.False(t, s.Configured())
		_, err = s.Send(context.Background(), msg)
		assert.ErrorIs(t, err, email.ErrNotConfigured)
	})

	t.Run("Should return the provider message id", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.True(t, strings.HasSuffix(r.URL.Path, "/emails"))
			assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"abc123"}`))
		}))
		defer srv.Close()

		s, err := email.NewResendSender("re_test", email.WithResendBaseURL(srv.URL+"/"))
		require.NoError(t, err)

		id, err := s.Send(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, "abc123", id)
		assert.Equal(t, "jane@example.com", got["reply_to"])
		assert.Equal(t, "New Contact Form Submission from Jane Doe", got["subject"])
	})

	t.Run("Should surface provider errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
		}))
		defer srv.Close()

		s, err := email.NewResendSender("re_test", email.WithResendBaseURL(srv.URL+"/"))
		require.NoError(t, err)

		_, err = s.Send(context.Background(), msg)
		assert.Error(t, err)
	})
}
