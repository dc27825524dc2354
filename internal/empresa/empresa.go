package empresa

import (
	"time"

	"github.com/google/uuid"
)

// Empresa is a collaborating company offering internship placements.
type Empresa struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Nombre           string    `json:"nombre"`
	CIF              string    `json:"cif" gorm:"column:cif"`
	Direccion        string    `json:"direccion"`
	Localidad        string    `json:"localidad"`
	ContactoNombre   string    `json:"contactoNombre"`
	ContactoEmail    string    `json:"contactoEmail"`
	ContactoTelefono string    `json:"contactoTelefono"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (Empresa) TableName() string {
	return "empresas"
}

func NewEmpresa(dto CreateEmpresaDTO) *Empresa {
	now := time.Now()
	return &Empresa{
		ID:               uuid.NewString(),
		Nombre:           dto.Nombre,
		CIF:              dto.CIF,
		Direccion:        dto.Direccion,
		Localidad:        dto.Localidad,
		ContactoNombre:   dto.ContactoNombre,
		ContactoEmail:    dto.ContactoEmail,
		ContactoTelefono: dto.ContactoTelefono,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (e *Empresa) ApplyUpdate(dto UpdateEmpresaDTO) {
	e.Nombre = dto.Nombre
	e.CIF = dto.CIF
	e.Direccion = dto.Direccion
	e.Localidad = dto.Localidad
	e.ContactoNombre = dto.ContactoNombre
	e.ContactoEmail = dto.ContactoEmail
	e.ContactoTelefono = dto.ContactoTelefono
	e.UpdatedAt = time.Now()
}
