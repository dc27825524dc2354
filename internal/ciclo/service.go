package ciclo

import (
	"log/slog"

	"github.com/ceac-fct/placement-management/internal"
)

type Repository interface {
	Create(c *CicloFormativo) error
	CreateConsumingDraft(c *CicloFormativo, ownerID, draftID string) error
	GetByID(id string) (*CicloFormativo, error)
	GetAll() ([]*CicloFormativo, error)
	Update(c *CicloFormativo) error
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

func (s *Service) Create(userID string, dto CreateCicloDTO) (*CicloFormativo, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c := NewCicloFormativo(dto)

	var err error
	if dto.PendingTaskID != nil {
		err = s.repo.CreateConsumingDraft(c, userID, *dto.PendingTaskID)
	} else {
		err = s.repo.Create(c)
	}
	if err != nil {
		s.logger.Error("failed to create ciclo", "error", err)
		return nil, err
	}

	s.logger.Info("ciclo created", "ciclo_id", c.ID, "nombre", c.Nombre)
	return c, nil
}

func (s *Service) GetByID(id string) (*CicloFormativo, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, internal.ErrCicloNotFound
	}
	return c, nil
}

func (s *Service) GetAll() ([]*CicloFormativo, error) {
	return s.repo.GetAll()
}

func (s *Service) Update(id string, dto UpdateCicloDTO) (*CicloFormativo, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	c.ApplyUpdate(dto)
	if err := s.repo.Update(c); err != nil {
		s.logger.Error("failed to update ciclo", "ciclo_id", id, "error", err)
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete ciclo", "ciclo_id", id, "error", err)
		return err
	}
	s.logger.Info("ciclo deleted", "ciclo_id", id)
	return nil
}
