package events

import (
	"context"
	"log/slog"
)

// AuditLogger records every domain event in the structured log, giving
// administrators a trail of who changed what without a separate store.
type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	return &AuditLogger{logger: logger}
}

// Register subscribes the audit logger to all domain event types.
func (a *AuditLogger) Register(bus *EventBus) {
	for _, eventType := range []string{
		EventPendingTaskCreated,
		EventPendingTaskRemoved,
		EventAsignacionCreated,
		EventAsignacionDeleted,
		EventUserRoleChanged,
	} {
		bus.Subscribe(eventType, a.handle)
	}
}

func (a *AuditLogger) handle(ctx context.Context, event Event) error {
	a.logger.InfoContext(ctx, "audit",
		"event_type", event.EventType(),
		"event_id", event.EventID(),
		"occurred_at", event.OccurredAt(),
		"payload", event.Payload())
	return nil
}
