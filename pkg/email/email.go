package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
)

// ErrNotConfigured is returned by a Sender asked to send without credentials.
var ErrNotConfigured = errors.New("email sender is not configured")

// Message is a fully composed email ready for delivery.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a composed message through an email provider and returns
// the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
	// Configured reports whether the sender holds the credentials it needs.
	Configured() bool
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	CompanyName string
}

// contactHTMLTemplate is the HTML template for contact form emails.
// html/template escapes every submitted field.
const contactHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #f8f9fa; border-radius: 8px; padding: 24px; margin-bottom: 20px; }
        .header h1 { color: #2563eb; margin: 0 0 16px 0; font-size: 24px; }
        .content { background: #fff; border: 1px solid #e5e7eb; border-radius: 8px; padding: 24px; }
        .field { margin-bottom: 20px; }
        .label { font-weight: bold; color: #374151; display: block; margin-bottom: 4px; }
        .value { color: #111827; }
        .message-box { background: #f9fafb; border-left: 4px solid #2563eb; padding: 16px; border-radius: 4px; white-space: pre-wrap; }
        .footer { margin-top: 24px; padding-top: 24px; border-top: 1px solid #e5e7eb; text-align: center; color: #9ca3af; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
            <p>You have received a new message from your website contact form.</p>
        </div>
        <div class="content">
            <div class="field">
                <span class="label">Name:</span>
                <span class="value">{{.Name}}</span>
            </div>
            <div class="field">
                <span class="label">Email:</span>
                <a href="mailto:{{.Email}}">{{.Email}}</a>
            </div>
            {{- if .Phone}}
            <div class="field">
                <span class="label">Phone:</span>
                <span class="value">{{.Phone}}</span>
            </div>
            {{- end}}
            <div class="field">
                <span class="label">Message:</span>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the {{.CompanyName}} website contact form.</p>
        </div>
    </div>
</body>
</html>`

// contactTextTemplate is the plain-text alternative. The phone line is
// dropped entirely when no phone was submitted.
const contactTextTemplate = `New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}
{{- if .Phone}}
Phone: {{.Phone}}
{{- end}}

Message:
{{.Message}}

---
This email was sent from the {{.CompanyName}} website contact form.`

var (
	contactHTML = template.Must(template.New("contact_html").Parse(contactHTMLTemplate))
	contactText = texttemplate.Must(texttemplate.New("contact_text").Parse(contactTextTemplate))
)

// ContactSubject is the subject line for a submission from name.
func ContactSubject(name string) string {
	return fmt.Sprintf("New Contact Form Submission from %s", name)
}

// RenderContactEmail renders the HTML and plain-text bodies for a submission.
func RenderContactEmail(data ContactEmailData) (html string, text string, err error) {
	var htmlBody bytes.Buffer
	if err := contactHTML.Execute(&htmlBody, data); err != nil {
		return "", "", fmt.Errorf("failed to execute html email template: %w", err)
	}

	var textBody bytes.Buffer
	if err := contactText.Execute(&textBody, data); err != nil {
		return "", "", fmt.Errorf("failed to execute text email template: %w", err)
	}

	return htmlBody.String(), strings.TrimSpace(textBody.String()), nil
}
