package postgres

import (
	"github.com/ceac-fct/placement-management/internal"
	"github.com/ceac-fct/placement-management/internal/estudiante"
	"gorm.io/gorm"
)

type EstudianteRepository struct {
	db *gorm.DB
}

func NewEstudianteRepository(db *gorm.DB) estudiante.Repository {
	return &EstudianteRepository{db: db}
}

func (r *EstudianteRepository) Create(e *estudiante.Estudiante) error {
	return r.db.Create(e).Error
}

func (r *EstudianteRepository) CreateConsumingDraft(e *estudiante.Estudiante, ownerID, draftID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		res := tx.Exec("DELETE FROM pending_tasks WHERE id = ? AND user_id = ? AND type = 'estudiante'", draftID, ownerID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrPendingTaskNotFound
		}
		return nil
	})
}

func (r *EstudianteRepository) GetByID(id string) (*estudiante.Estudiante, error) {
	var e estudiante.Estudiante
	err := r.db.Where("id = ?", id).First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EstudianteRepository) GetAll() ([]*estudiante.Estudiante, error) {
	var estudiantes []*estudiante.Estudiante
	err := r.db.Order("apellidos ASC, nombre ASC").Find(&estudiantes).Error
	return estudiantes, err
}

func (r *EstudianteRepository) GetByCiclo(cicloID string) ([]*estudiante.Estudiante, error) {
	var estudiantes []*estudiante.Estudiante
	err := r.db.Where("ciclo_formativo_id = ?", cicloID).
		Order("apellidos ASC, nombre ASC").
		Find(&estudiantes).Error
	return estudiantes, err
}

func (r *EstudianteRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&estudiante.Estudiante{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *EstudianteRepository) Update(e *estudiante.Estudiante) error {
	return r.db.Save(e).Error
}

func (r *EstudianteRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&estudiante.Estudiante{}).Error
}
