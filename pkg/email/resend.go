package email

import (
	"context"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers mail through the Resend HTTP API.
type ResendSender struct {
	apiKey string
	client *resend.Client
}

type ResendOption func(*ResendSender) error

// WithResendBaseURL points the client at another API root, e.g. a local stub.
func WithResendBaseURL(raw string) ResendOption {
	return func(s *ResendSender) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("resend: invalid base url: %w", err)
		}
		s.client.BaseURL = u
		return nil
	}
}

func NewResendSender(apiKey string, opts ...ResendOption) (*ResendSender, error) {
	s := &ResendSender{
		apiKey: apiKey,
		client: resend.NewClient(apiKey),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *ResendSender) Configured() bool {
	return s.apiKey != ""
}

func (s *ResendSender) Send(ctx context.Context, msg *Message) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return sent.Id, nil
}
