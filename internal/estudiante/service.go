package estudiante

import (
	"log/slog"

	"github.com/ceac-fct/placement-management/internal"
)

type Repository interface {
	Create(e *Estudiante) error
	CreateConsumingDraft(e *Estudiante, ownerID, draftID string) error
	GetByID(id string) (*Estudiante, error)
	GetAll() ([]*Estudiante, error)
	GetByCiclo(cicloID string) ([]*Estudiante, error)
	Exists(id string) (bool, error)
	Update(e *Estudiante) error
	Delete(id string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Create(userID string, dto CreateEstudianteDTO) (*Estudiante, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e := NewEstudiante(dto)

	var err error
	if dto.PendingTaskID != nil {
		err = s.repo.CreateConsumingDraft(e, userID, *dto.PendingTaskID)
	} else {
		err = s.repo.Create(e)
	}
	if err != nil {
		s.logger.Error("failed to create estudiante", "error", err)
		return nil, err
	}

	s.logger.Info("estudiante created", "estudiante_id", e.ID, "dni", e.DNI)
	return e, nil
}

func (s *Service) GetByID(id string) (*Estudiante, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, internal.ErrEstudianteNotFound
	}
	return e, nil
}

func (s *Service) GetAll() ([]*Estudiante, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByCiclo(cicloID string) ([]*Estudiante, error) {
	return s.repo.GetByCiclo(cicloID)
}

func (s *Service) Update(id string, dto UpdateEstudianteDTO) (*Estudiante, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	e.ApplyUpdate(dto)
	if err := s.repo.Update(e); err != nil {
		s.logger.Error("failed to update estudiante", "estudiante_id", id, "error", err)
		return nil, err
	}

	return e, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete estudiante", "estudiante_id", id, "error", err)
		return err
	}
	s.logger.Info("estudiante deleted", "estudiante_id", id)
	return nil
}
