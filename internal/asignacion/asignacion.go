package asignacion

import (
	"time"

	"github.com/google/uuid"
)

// Asignacion places a student in a company for the internship period.
// EstudianteID and EmpresaID are plain references; their existence is checked
// at write time, nothing enforces integrity afterwards.
type Asignacion struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	EstudianteID string    `json:"estudianteId"`
	EmpresaID    string    `json:"empresaId"`
	FechaInicio  string    `json:"fechaInicio"`
	FechaFin     string    `json:"fechaFin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Asignacion) TableName() string {
	return "asignaciones"
}

func NewAsignacion(dto CreateAsignacionDTO) *Asignacion {
	now := time.Now()
	return &Asignacion{
		ID:           uuid.NewString(),
		EstudianteID: dto.EstudianteID,
		EmpresaID:    dto.EmpresaID,
		FechaInicio:  dto.FechaInicio,
		FechaFin:     dto.FechaFin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (a *Asignacion) ApplyUpdate(dto UpdateAsignacionDTO) {
	a.EstudianteID = dto.EstudianteID
	a.EmpresaID = dto.EmpresaID
	a.FechaInicio = dto.FechaInicio
	a.FechaFin = dto.FechaFin
	a.UpdatedAt = time.Now()
}
