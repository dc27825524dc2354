package postgres

import (
	"github.com/ceac-fct/placement-management/internal/pendingtask"
	"gorm.io/gorm"
)

type PendingTaskRepository struct {
	db *gorm.DB
}

func NewPendingTaskRepository(db *gorm.DB) pendingtask.Repository {
	return &PendingTaskRepository{db: db}
}

func (r *PendingTaskRepository) Create(t *pendingtask.PendingTask) error {
	return r.db.Create(t).Error
}

func (r *PendingTaskRepository) GetByID(userID, id string) (*pendingtask.PendingTask, error) {
	var t pendingtask.PendingTask
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *PendingTaskRepository) GetByUser(userID string) ([]*pendingtask.PendingTask, error) {
	var tasks []*pendingtask.PendingTask
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *PendingTaskRepository) Delete(userID, id string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&pendingtask.PendingTask{}).Error
}
