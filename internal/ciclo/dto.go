package ciclo

import (
	"github.com/ceac-fct/placement-management/internal/core/common/validation"
)

type CreateCicloDTO struct {
	Nombre   string `json:"nombre"`
	Nivel    string `json:"nivel"`
	Familia  string `json:"familia"`
	Duracion string `json:"duracion"`

	PendingTaskID *string `json:"pendingTaskId,omitempty"`
}

type UpdateCicloDTO struct {
	Nombre   string `json:"nombre"`
	Nivel    string `json:"nivel"`
	Familia  string `json:"familia"`
	Duracion string `json:"duracion"`
}

type CiclosResponse struct {
	Ciclos []*CicloFormativo `json:"ciclos"`
}

func (d CreateCicloDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("nombre", d.Nombre).Required().MaxLength(200)
	v.Field("nivel", d.Nivel).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d UpdateCicloDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("nombre", d.Nombre).Required().MaxLength(200)
	v.Field("nivel", d.Nivel).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
