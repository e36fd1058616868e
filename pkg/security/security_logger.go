package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of contact form event
type EventType string

const (
	EventContactDelivered EventType = "contact_delivered"
	EventContactRejected  EventType = "contact_rejected"
	EventContactFailed    EventType = "contact_failed"
)

// Event is one entry in the submission audit trail. Subject values are
// masked before they reach the log.
type Event struct {
	Timestamp    time.Time              `json:"timestamp"`
	Event        EventType              `json:"event"`
	SubjectType  string                 `json:"subject_type,omitempty"`
	SubjectValue string                 `json:"subject_value,omitempty"`
	IP           string                 `json:"ip,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// EventLogger writes the contact submission audit trail with zap, separate
// from the application log so it can be shipped and retained on its own.
type EventLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewEventLogger builds a production zap logger writing JSON to stdout.
func NewEventLogger(serviceName, environment string) *EventLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"

	// Set output to stdout for container environments
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		// Fallback to a basic logger if config fails
		logger, _ = zap.NewProduction()
	}

	return NewEventLoggerWith(logger, serviceName, environment)
}

// NewEventLoggerWith wraps an existing zap logger.
func NewEventLoggerWith(logger *zap.Logger, serviceName, environment string) *EventLogger {
	return &EventLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// Log logs an event. A nil *EventLogger is a no-op.
func (l *EventLogger) Log(ctx context.Context, event Event) {
	if l == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	level := zapcore.InfoLevel
	switch event.Event {
	case EventContactRejected:
		level = zapcore.WarnLevel
	case EventContactFailed:
		level = zapcore.ErrorLevel
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("event_time", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// LogContact records the outcome of one contact submission. reason is empty
// on success.
func (l *EventLogger) LogContact(ctx context.Context, event EventType, email, ip, userAgent, requestID, reason string) {
	e := Event{
		Event:     event,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
	}
	if email != "" {
		e.SubjectType = "email"
		e.SubjectValue = MaskEmail(email)
	}
	if reason != "" {
		e.Details = map[string]interface{}{"reason": reason}
	}
	l.Log(ctx, e)
}

// Sync flushes any buffered log entries
func (l *EventLogger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zapLogger.Sync()
}

// --- Helper Functions ---

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := strings.IndexByte(email, '@')
	if atIndex < 0 {
		return HashValue(email)
	}
	// keep the first rune, not the first byte
	_, size := utf8.DecodeRuneInString(email)
	if atIndex <= size {
		return "***" + email[atIndex:]
	}
	return email[:size] + "***" + email[atIndex:]
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8]) // First 16 chars of hex
}

// Environment maps a gin mode to the environment label used in events.
func Environment(ginMode string) string {
	if ginMode == "release" {
		return "production"
	}
	return "development"
}
