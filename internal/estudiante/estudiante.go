package estudiante

import (
	"time"

	"github.com/google/uuid"
)

// Estudiante is a student enrolled in a training cycle, eligible for an
// internship placement.
type Estudiante struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Nombre           string    `json:"nombre"`
	Apellidos        string    `json:"apellidos"`
	DNI              string    `json:"dni" gorm:"column:dni"`
	Email            string    `json:"email"`
	Telefono         string    `json:"telefono"`
	CicloFormativoID string    `json:"cicloFormativoId"`
	Curso            string    `json:"curso"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (Estudiante) TableName() string {
	return "estudiantes"
}

func NewEstudiante(dto CreateEstudianteDTO) *Estudiante {
	now := time.Now()
	return &Estudiante{
		ID:               uuid.NewString(),
		Nombre:           dto.Nombre,
		Apellidos:        dto.Apellidos,
		DNI:              dto.DNI,
		Email:            dto.Email,
		Telefono:         dto.Telefono,
		CicloFormativoID: dto.CicloFormativoID,
		Curso:            dto.Curso,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (e *Estudiante) ApplyUpdate(dto UpdateEstudianteDTO) {
	e.Nombre = dto.Nombre
	e.Apellidos = dto.Apellidos
	e.DNI = dto.DNI
	e.Email = dto.Email
	e.Telefono = dto.Telefono
	e.CicloFormativoID = dto.CicloFormativoID
	e.Curso = dto.Curso
	e.UpdatedAt = time.Now()
}

// NombreCompleto is the display name used by listings.
func (e *Estudiante) NombreCompleto() string {
	if e.Apellidos == "" {
		return e.Nombre
	}
	return e.Nombre + " " + e.Apellidos
}
