package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	studentKey ctxKey = iota
	requestKey
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a logger on the standard logrus logger
func New() *Logger {
	return &Logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// ContextWithStudent records the acting student for later log lines
func ContextWithStudent(ctx context.Context, studentID string) context.Context {
	return context.WithValue(ctx, studentKey, studentID)
}

// ContextWithRequestID records the request id for later log lines
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestKey, requestID)
}

// WithContext returns a logger tagged with the student and request id found in ctx
func WithContext(ctx context.Context) *Logger {
	fields := logrus.Fields{"student": "anonymous"}
	if id, ok := ctx.Value(studentKey).(string); ok && id != "" {
		fields["student"] = id
	}
	if id, ok := ctx.Value(requestKey).(string); ok && id != "" {
		fields["request_id"] = id
	}
	return &Logger{Entry: logrus.WithFields(fields)}
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}
