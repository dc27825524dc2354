package empresa

import (
	"log/slog"

	"github.com/ceac-fct/placement-management/internal"
)

type Repository interface {
	Create(e *Empresa) error
	CreateConsumingDraft(e *Empresa, ownerID, draftID string) error
	GetByID(id string) (*Empresa, error)
	GetAll() ([]*Empresa, error)
	Exists(id string) (bool, error)
	Update(e *Empresa) error
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

func (s *Service) Create(userID string, dto CreateEmpresaDTO) (*Empresa, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e := NewEmpresa(dto)

	var err error
	if dto.PendingTaskID != nil {
		err = s.repo.CreateConsumingDraft(e, userID, *dto.PendingTaskID)
	} else {
		err = s.repo.Create(e)
	}
	if err != nil {
		s.logger.Error("failed to create empresa", "error", err)
		return nil, err
	}

	s.logger.Info("empresa created", "empresa_id", e.ID, "nombre", e.Nombre)
	return e, nil
}

func (s *Service) GetByID(id string) (*Empresa, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, internal.ErrEmpresaNotFound
	}
	return e, nil
}

func (s *Service) GetAll() ([]*Empresa, error) {
	return s.repo.GetAll()
}

func (s *Service) Update(id string, dto UpdateEmpresaDTO) (*Empresa, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	e.ApplyUpdate(dto)
	if err := s.repo.Update(e); err != nil {
		s.logger.Error("failed to update empresa", "empresa_id", id, "error", err)
		return nil, err
	}

	return e, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete empresa", "empresa_id", id, "error", err)
		return err
	}
	s.logger.Info("empresa deleted", "empresa_id", id)
	return nil
}
