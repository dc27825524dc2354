package postgres

import (
	"github.com/ceac-fct/placement-management/internal"
	"github.com/ceac-fct/placement-management/internal/empresa"
	"gorm.io/gorm"
)

// EmpresaRepository implements the empresa.Repository interface using GORM
type EmpresaRepository struct {
	db *gorm.DB
}

func NewEmpresaRepository(db *gorm.DB) empresa.Repository {
	return &EmpresaRepository{db: db}
}

func (r *EmpresaRepository) Create(e *empresa.Empresa) error {
	return r.db.Create(e).Error
}

// CreateConsumingDraft inserts the empresa and deletes the originating draft in
// one transaction, so a failure cannot leave both the entity and a stale draft.
// The draft must belong to ownerID and be an empresa draft; otherwise the whole
// create rolls back.
func (r *EmpresaRepository) CreateConsumingDraft(e *empresa.Empresa, ownerID, draftID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		res := tx.Exec("DELETE FROM pending_tasks WHERE id = ? AND user_id = ? AND type = 'empresa'", draftID, ownerID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrPendingTaskNotFound
		}
		return nil
	})
}

func (r *EmpresaRepository) GetByID(id string) (*empresa.Empresa, error) {
	var e empresa.Empresa
	err := r.db.Where("id = ?", id).First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmpresaRepository) GetAll() ([]*empresa.Empresa, error) {
	var empresas []*empresa.Empresa
	err := r.db.Order("nombre ASC").Find(&empresas).Error
	return empresas, err
}

func (r *EmpresaRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&empresa.Empresa{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *EmpresaRepository) Update(e *empresa.Empresa) error {
	return r.db.Save(e).Error
}

func (r *EmpresaRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&empresa.Empresa{}).Error
}
