package postgres

import (
	"github.com/ceac-fct/placement-management/internal"
	"github.com/ceac-fct/placement-management/internal/ciclo"
	"gorm.io/gorm"
)

type CicloRepository struct {
	db *gorm.DB
}

func NewCicloRepository(db *gorm.DB) ciclo.Repository {
	return &CicloRepository{db: db}
}

func (r *CicloRepository) Create(c *ciclo.CicloFormativo) error {
	return r.db.Create(c).Error
}

func (r *CicloRepository) CreateConsumingDraft(c *ciclo.CicloFormativo, ownerID, draftID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		res := tx.Exec("DELETE FROM pending_tasks WHERE id = ? AND user_id = ? AND type = 'ciclo'", draftID, ownerID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrPendingTaskNotFound
		}
		return nil
	})
}

func (r *CicloRepository) GetByID(id string) (*ciclo.CicloFormativo, error) {
	var c ciclo.CicloFormativo
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CicloRepository) GetAll() ([]*ciclo.CicloFormativo, error) {
	var ciclos []*ciclo.CicloFormativo
	err := r.db.Order("nombre ASC").Find(&ciclos).Error
	return ciclos, err
}

func (r *CicloRepository) Update(c *ciclo.CicloFormativo) error {
	return r.db.Save(c).Error
}

func (r *CicloRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&ciclo.CicloFormativo{}).Error
}
