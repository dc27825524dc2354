package asignacion

import (
	"time"

	errors "github.com/ceac-fct/placement-management/internal"
	"github.com/ceac-fct/placement-management/internal/core/common/validation"
)

type CreateAsignacionDTO struct {
	EstudianteID string `json:"estudianteId"`
	EmpresaID    string `json:"empresaId"`
	FechaInicio  string `json:"fechaInicio"`
	FechaFin     string `json:"fechaFin"`

	PendingTaskID *string `json:"pendingTaskId,omitempty"`
}

type UpdateAsignacionDTO struct {
	EstudianteID string `json:"estudianteId"`
	EmpresaID    string `json:"empresaId"`
	FechaInicio  string `json:"fechaInicio"`
	FechaFin     string `json:"fechaFin"`
}

type AsignacionesResponse struct {
	Asignaciones []*Asignacion `json:"asignaciones"`
}

func (d CreateAsignacionDTO) Validate() error {
	return validateFields(d.EstudianteID, d.EmpresaID, d.FechaInicio, d.FechaFin)
}

func (d UpdateAsignacionDTO) Validate() error {
	return validateFields(d.EstudianteID, d.EmpresaID, d.FechaInicio, d.FechaFin)
}

func validateFields(estudianteID, empresaID, fechaInicio, fechaFin string) error {
	v := validation.NewValidator()
	v.Field("estudianteId", estudianteID).Required()
	v.Field("empresaId", empresaID).Required()
	v.Field("fechaInicio", fechaInicio).Required().Date()
	v.Field("fechaFin", fechaFin).Required().Date()
	if err := v.Validate(); err != nil {
		return err
	}

	inicio, err1 := time.Parse("2006-01-02", fechaInicio)
	fin, err2 := time.Parse("2006-01-02", fechaFin)
	if err1 == nil && err2 == nil && fin.Before(inicio) {
		return errors.NewValidationFieldError("fechaFin",
			"fechaFin cannot be before fechaInicio", errors.ErrCodeInvalidDate)
	}
	return nil
}
