package estudiante

import (
	"github.com/ceac-fct/placement-management/internal/core/common/validation"
)

type CreateEstudianteDTO struct {
	Nombre           string `json:"nombre"`
	Apellidos        string `json:"apellidos"`
	DNI              string `json:"dni"`
	Email            string `json:"email"`
	Telefono         string `json:"telefono"`
	CicloFormativoID string `json:"cicloFormativoId"`
	Curso            string `json:"curso"`

	PendingTaskID *string `json:"pendingTaskId,omitempty"`
}

type UpdateEstudianteDTO struct {
	Nombre           string `json:"nombre"`
	Apellidos        string `json:"apellidos"`
	DNI              string `json:"dni"`
	Email            string `json:"email"`
	Telefono         string `json:"telefono"`
	CicloFormativoID string `json:"cicloFormativoId"`
	Curso            string `json:"curso"`
}

type EstudiantesResponse struct {
	Estudiantes []*Estudiante `json:"estudiantes"`
}

func (d CreateEstudianteDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("nombre", d.Nombre).Required().MaxLength(100)
	v.Field("apellidos", d.Apellidos).Required().MaxLength(200)
	v.Field("dni", d.DNI).Required().MaxLength(20)
	v.Field("email", d.Email).Email()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d UpdateEstudianteDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("nombre", d.Nombre).Required().MaxLength(100)
	v.Field("apellidos", d.Apellidos).Required().MaxLength(200)
	v.Field("dni", d.DNI).Required().MaxLength(20)
	v.Field("email", d.Email).Email()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
