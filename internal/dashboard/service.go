package dashboard

import (
	"log/slog"

	"github.com/ceac-fct/placement-management/internal/asignacion"
)

const recentAsignacionesLimit = 5

// Stats are the entity counts shown on the landing page cards.
type Stats struct {
	Empresas     int64 `json:"empresas"`
	Estudiantes  int64 `json:"estudiantes"`
	Ciclos       int64 `json:"ciclosFormativos"`
	Asignaciones int64 `json:"asignaciones"`
}

type StatsResponse struct {
	Stats              Stats                    `json:"stats"`
	RecentAsignaciones []*asignacion.Asignacion `json:"recentAsignaciones"`
}

type Repository interface {
	CountEntities() (Stats, error)
}

// RecentLister supplies the latest placements; implemented by the asignacion
// service.
type RecentLister interface {
	GetRecent(limit int) ([]*asignacion.Asignacion, error)
}

type Service struct {
	repo         Repository
	asignaciones RecentLister
	logger       *slog.Logger
}

func NewService(repo Repository, asignaciones RecentLister, logger *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		asignaciones: asignaciones,
		logger:       logger,
	}
}

func (s *Service) GetStats() (*StatsResponse, error) {
	stats, err := s.repo.CountEntities()
	if err != nil {
		s.logger.Error("failed to count entities", "error", err)
		return nil, err
	}

	recent, err := s.asignaciones.GetRecent(recentAsignacionesLimit)
	if err != nil {
		s.logger.Error("failed to load recent asignaciones", "error", err)
		return nil, err
	}

	return &StatsResponse{Stats: stats, RecentAsignaciones: recent}, nil
}
