package events

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle events published by the domain services. Subscribed to by the
// audit log; useful for external notification hooks later.
const (
	EventPendingTaskCreated = "pending_task.created"
	EventPendingTaskRemoved = "pending_task.removed"
	EventAsignacionCreated  = "asignacion.created"
	EventAsignacionDeleted  = "asignacion.deleted"
	EventUserRoleChanged    = "user.role_changed"
)

func NewPendingTaskCreated(taskID, userID, taskType string) BaseEvent {
	return newEvent(EventPendingTaskCreated, map[string]interface{}{
		"task_id": taskID,
		"user_id": userID,
		"type":    taskType,
	})
}

func NewPendingTaskRemoved(taskID string) BaseEvent {
	return newEvent(EventPendingTaskRemoved, map[string]interface{}{
		"task_id": taskID,
	})
}

func NewAsignacionCreated(asignacionID, estudianteID, empresaID string) BaseEvent {
	return newEvent(EventAsignacionCreated, map[string]interface{}{
		"asignacion_id": asignacionID,
		"estudiante_id": estudianteID,
		"empresa_id":    empresaID,
	})
}

func NewAsignacionDeleted(asignacionID string) BaseEvent {
	return newEvent(EventAsignacionDeleted, map[string]interface{}{
		"asignacion_id": asignacionID,
	})
}

func NewUserRoleChanged(userID, oldRole, newRole string) BaseEvent {
	return newEvent(EventUserRoleChanged, map[string]interface{}{
		"user_id":  userID,
		"old_role": oldRole,
		"new_role": newRole,
	})
}

func newEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}
