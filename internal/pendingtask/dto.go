package pendingtask

import (
	"encoding/json"

	"github.com/ceac-fct/placement-management/internal/core/common/validation"
)

type CreatePendingTaskDTO struct {
	Type        TaskType        `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	FormData    json.RawMessage `json:"formData"`
}

type PendingTasksResponse struct {
	PendingTasks []*PendingTask `json:"pendingTasks"`
	Count        int            `json:"count"`
}

func (d CreatePendingTaskDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("title", d.Title).Required().MaxLength(200)
	v.Field("description", d.Description).MaxLength(1000)
	if err := v.Validate(); err != nil {
		return err
	}
	return validateForm(d.Type, d.FormData)
}
