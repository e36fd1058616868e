package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketing-site-backend/internal/domain"
	"marketing-site-backend/pkg/email"
	"marketing-site-backend/pkg/logger"
	"marketing-site-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ContactSettings is the delivery configuration injected at startup.
// Provider credentials live in the email.Sender itself.
type ContactSettings struct {
	ToEmail     string
	FromEmail   string
	CompanyName string
}

type contactUsecase struct {
	sender   email.Sender
	validate *validator.Validate
	settings ContactSettings
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender email.Sender, validate *validator.Validate, settings ContactSettings) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		validate: validate,
		settings: settings,
	}
}

// SendContactMessage validates the contact request and sends the email.
// Each call performs at most one Send; nothing is retried or deduplicated.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) (string, error) {
	if err := uc.validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return "", fmt.Errorf("validate contact submission: %w", err)
		}
		detail := strings.Join(validation.FormatValidationErrors(err), "; ")
		// missing fields take precedence over a malformed address
		if validation.HasTag(err, "required") {
			return "", fmt.Errorf("%w: %s", domain.ErrMissingRequiredFields, detail)
		}
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidEmail, detail)
	}

	if uc.sender == nil || !uc.sender.Configured() {
		logger.Log.Warn("Email provider not configured, contact email will not be sent",
			"request_id", requestID(ctx))
		return "", domain.ErrEmailNotConfigured
	}

	html, text, err := email.RenderContactEmail(email.ContactEmailData{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		CompanyName: uc.settings.CompanyName,
	})
	if err != nil {
		return "", err
	}

	id, err := uc.sender.Send(ctx, &email.Message{
		From:    uc.settings.FromEmail,
		To:      []string{uc.settings.ToEmail},
		ReplyTo: req.Email,
		Subject: email.ContactSubject(req.Name),
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Log.Error("Email provider error", "error", err, "request_id", requestID(ctx))
		return "", fmt.Errorf("%w: %w", domain.ErrEmailDispatch, err)
	}

	logger.Log.Info("Contact email sent", "message_id", id, "request_id", requestID(ctx))
	return id, nil
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(domain.KeyRequestID).(string)
	return id
}
