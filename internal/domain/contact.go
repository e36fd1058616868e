package domain

import (
	"context"
	"errors"
)

// Contact pipeline failures. Handlers map each to an HTTP status.
var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrEmailNotConfigured    = errors.New("email service is not configured")
	ErrEmailDispatch         = errors.New("email provider rejected the message")
)

// ContactSubmission represents a contact form submission. It is bound from
// form-urlencoded, multipart or JSON bodies and never stored.
type ContactSubmission struct {
	Name    string `form:"name" json:"name" validate:"required"`
	Email   string `form:"email" json:"email" validate:"required,email_shape"`
	Phone   string `form:"phone" json:"phone"`
	Message string `form:"message" json:"message" validate:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission, emails it to the site
	// owner and returns the provider's message id.
	SendContactMessage(ctx context.Context, req *ContactSubmission) (string, error)
}
