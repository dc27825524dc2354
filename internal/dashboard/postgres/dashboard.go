package postgres

import (
	"github.com/ceac-fct/placement-management/internal/asignacion"
	"github.com/ceac-fct/placement-management/internal/ciclo"
	"github.com/ceac-fct/placement-management/internal/dashboard"
	"github.com/ceac-fct/placement-management/internal/empresa"
	"github.com/ceac-fct/placement-management/internal/estudiante"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CountEntities() (dashboard.Stats, error) {
	var stats dashboard.Stats

	if err := r.db.Model(&empresa.Empresa{}).Count(&stats.Empresas).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&estudiante.Estudiante{}).Count(&stats.Estudiantes).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&ciclo.CicloFormativo{}).Count(&stats.Ciclos).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&asignacion.Asignacion{}).Count(&stats.Asignaciones).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
