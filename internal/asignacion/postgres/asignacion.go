package postgres

import (
	"github.com/ceac-fct/placement-management/internal"
	"github.com/ceac-fct/placement-management/internal/asignacion"
	"gorm.io/gorm"
)

type AsignacionRepository struct {
	db *gorm.DB
}

func NewAsignacionRepository(db *gorm.DB) asignacion.Repository {
	return &AsignacionRepository{db: db}
}

func (r *AsignacionRepository) Create(a *asignacion.Asignacion) error {
	return r.db.Create(a).Error
}

// CreateConsumingDraft finishes a draft placement: the insert and the draft
// delete either both happen or neither does. Only a draft owned by ownerID
// and saved from the asignacion form qualifies.
func (r *AsignacionRepository) CreateConsumingDraft(a *asignacion.Asignacion, ownerID, draftID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		res := tx.Exec("DELETE FROM pending_tasks WHERE id = ? AND user_id = ? AND type = 'asignacion'", draftID, ownerID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrPendingTaskNotFound
		}
		return nil
	})
}

func (r *AsignacionRepository) GetByID(id string) (*asignacion.Asignacion, error) {
	var a asignacion.Asignacion
	err := r.db.Where("id = ?", id).First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AsignacionRepository) GetAll() ([]*asignacion.Asignacion, error) {
	var asignaciones []*asignacion.Asignacion
	err := r.db.Order("created_at DESC").Find(&asignaciones).Error
	return asignaciones, err
}

func (r *AsignacionRepository) GetRecent(limit int) ([]*asignacion.Asignacion, error) {
	var asignaciones []*asignacion.Asignacion
	err := r.db.Order("created_at DESC").Limit(limit).Find(&asignaciones).Error
	return asignaciones, err
}

func (r *AsignacionRepository) Update(a *asignacion.Asignacion) error {
	return r.db.Save(a).Error
}

func (r *AsignacionRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&asignacion.Asignacion{}).Error
}
