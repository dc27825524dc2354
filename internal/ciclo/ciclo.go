package ciclo

import (
	"time"

	"github.com/google/uuid"
)

// CicloFormativo is a vocational training cycle students are enrolled in.
type CicloFormativo struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Nombre    string    `json:"nombre"`
	Nivel     string    `json:"nivel"`
	Familia   string    `json:"familia"`
	Duracion  string    `json:"duracion"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CicloFormativo) TableName() string {
	return "ciclos_formativos"
}

func NewCicloFormativo(dto CreateCicloDTO) *CicloFormativo {
	now := time.Now()
	return &CicloFormativo{
		ID:        uuid.NewString(),
		Nombre:    dto.Nombre,
		Nivel:     dto.Nivel,
		Familia:   dto.Familia,
		Duracion:  dto.Duracion,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *CicloFormativo) ApplyUpdate(dto UpdateCicloDTO) {
	c.Nombre = dto.Nombre
	c.Nivel = dto.Nivel
	c.Familia = dto.Familia
	c.Duracion = dto.Duracion
	c.UpdatedAt = time.Now()
}
