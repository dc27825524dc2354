package pendingtask

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TaskType identifies which entity form a draft was saved from.
type TaskType string

const (
	TaskTypeEmpresa    TaskType = "empresa"
	TaskTypeEstudiante TaskType = "estudiante"
	TaskTypeAsignacion TaskType = "asignacion"
	TaskTypeCiclo      TaskType = "ciclo"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeEmpresa, TaskTypeEstudiante, TaskTypeAsignacion, TaskTypeCiclo:
		return true
	}
	return false
}

// PendingTask is a saved half-finished form. It is an immutable snapshot:
// drafts are created, read back when the user resumes, and deleted; never
// edited in place.
type PendingTask struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	UserID      string         `json:"userId" gorm:"column:user_id"`
	Type        TaskType       `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	FormData    datatypes.JSON `json:"formData" gorm:"column:form_data"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (PendingTask) TableName() string {
	return "pending_tasks"
}

func NewPendingTask(userID string, dto CreatePendingTaskDTO) *PendingTask {
	return &PendingTask{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        dto.Type,
		Title:       dto.Title,
		Description: dto.Description,
		FormData:    datatypes.JSON(dto.FormData),
		CreatedAt:   time.Now(),
	}
}
