package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}

// Record satisfies the consumer audit sink so the same logger backs
// both the HTTP server lifecycle and the event stream.
func (l *StdoutAuditLogger) Record(ctx context.Context, action, message string, meta map[string]any) {
	l.Log(ctx, AuditLog{Action: action, Message: message, Meta: meta})
}
