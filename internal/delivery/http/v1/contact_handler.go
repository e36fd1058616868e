package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"marketing-site-backend/internal/delivery/http/response"
	"marketing-site-backend/internal/domain"
	"marketing-site-backend/pkg/apperror"
	"marketing-site-backend/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Client-facing contact form messages
const (
	MsgContactSent          = "Thank you for your message. We will get back to you soon!"
	MsgMissingFields        = "Missing required fields"
	MsgInvalidEmail         = "Invalid email format"
	MsgEmailNotConfigured   = "Email service not configured. Please check server settings."
	MsgEmailDispatchFailure = "Failed to send email. Please try again later."
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	events    *security.EventLogger
}

// NewContactHandler registers the contact routes (public, no auth required).
// events may be nil.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, events *security.EventLogger) {
	handler := &ContactHandler{
		contactUC: contactUC,
		events:    events,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the website contact form. This is a public endpoint.
// @Tags         contact
// @Accept       x-www-form-urlencoded,mpfd,json
// @Produce      json
// @Param        name     formData  string  true   "Sender name"
// @Param        email    formData  string  true   "Sender email"
// @Param        phone    formData  string  false  "Sender phone"
// @Param        message  formData  string  true   "Message body"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactSubmission
	// A body that cannot be decoded is not a client validation problem and
	// is reported as a 500.
	b, err := contactBinding(c.ContentType())
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	if err := c.ShouldBindWith(&req, b); err != nil {
		_ = c.Error(apperror.Internal(fmt.Errorf("parse contact form: %w", err)))
		return
	}

	// A client hanging up must not abort a send already in flight.
	ctx := context.WithoutCancel(c.Request.Context())

	if _, err := h.contactUC.SendContactMessage(ctx, &req); err != nil {
		appErr := contactError(err)
		event := security.EventContactFailed
		if appErr.Code < http.StatusInternalServerError {
			event = security.EventContactRejected
		}
		h.logEvent(c, event, req.Email, appErr.Message)
		_ = c.Error(appErr)
		return
	}

	h.logEvent(c, security.EventContactDelivered, req.Email, "")
	response.Success(c, http.StatusOK, MsgContactSent, nil)
}

// contactBinding reads fields from the request body only. binding.Form is
// avoided because it merges the URL query into the submitted fields.
func contactBinding(contentType string) (binding.Binding, error) {
	switch contentType {
	case binding.MIMEPOSTForm:
		return binding.FormPost, nil
	case binding.MIMEMultipartPOSTForm:
		return binding.FormMultipart, nil
	case binding.MIMEJSON:
		return binding.JSON, nil
	default:
		return nil, fmt.Errorf("parse contact form: unsupported content type %q", contentType)
	}
}

func contactError(err error) *apperror.AppError {
	switch {
	case errors.Is(err, domain.ErrMissingRequiredFields):
		return apperror.New(http.StatusBadRequest, MsgMissingFields, err)
	case errors.Is(err, domain.ErrInvalidEmail):
		return apperror.New(http.StatusBadRequest, MsgInvalidEmail, err)
	case errors.Is(err, domain.ErrEmailNotConfigured):
		return apperror.New(http.StatusInternalServerError, MsgEmailNotConfigured, nil)
	case errors.Is(err, domain.ErrEmailDispatch):
		// already logged by the usecase
		return apperror.New(http.StatusInternalServerError, MsgEmailDispatchFailure, nil)
	default:
		return apperror.Internal(err)
	}
}

func (h *ContactHandler) logEvent(c *gin.Context, event security.EventType, email, reason string) {
	h.events.LogContact(c.Request.Context(), event, email, c.ClientIP(), c.Request.UserAgent(),
		c.GetString(string(domain.KeyRequestID)), reason)
}
