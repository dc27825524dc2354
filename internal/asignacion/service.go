package asignacion

import (
	"context"
	"log/slog"

	"github.com/ceac-fct/placement-management/internal"
	"github.com/ceac-fct/placement-management/internal/core/events"
)

type Repository interface {
	Create(a *Asignacion) error
	CreateConsumingDraft(a *Asignacion, ownerID, draftID string) error
	GetByID(id string) (*Asignacion, error)
	GetAll() ([]*Asignacion, error)
	GetRecent(limit int) ([]*Asignacion, error)
	Update(a *Asignacion) error
	Delete(id string) error
}

// EstudianteChecker and EmpresaChecker are the existence checks run before an
// asignacion is written; implemented by the respective repositories.
type EstudianteChecker interface {
	Exists(id string) (bool, error)
}

type EmpresaChecker interface {
	Exists(id string) (bool, error)
}

type Service struct {
	repo        Repository
	estudiantes EstudianteChecker
	empresas    EmpresaChecker
	bus         *events.EventBus
	logger      *slog.Logger
}

func NewService(repo Repository, estudiantes EstudianteChecker, empresas EmpresaChecker, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		estudiantes: estudiantes,
		empresas:    empresas,
		bus:         bus,
		logger:      logger,
	}
}

func (s *Service) Create(userID string, dto CreateAsignacionDTO) (*Asignacion, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(dto.EstudianteID, dto.EmpresaID); err != nil {
		return nil, err
	}

	a := NewAsignacion(dto)

	var err error
	if dto.PendingTaskID != nil {
		err = s.repo.CreateConsumingDraft(a, userID, *dto.PendingTaskID)
	} else {
		err = s.repo.Create(a)
	}
	if err != nil {
		s.logger.Error("failed to create asignacion", "error", err)
		return nil, err
	}

	s.logger.Info("asignacion created",
		"asignacion_id", a.ID,
		"estudiante_id", a.EstudianteID,
		"empresa_id", a.EmpresaID)

	if s.bus != nil {
		_ = s.bus.Publish(context.Background(), events.NewAsignacionCreated(a.ID, a.EstudianteID, a.EmpresaID))
	}

	return a, nil
}

func (s *Service) GetByID(id string) (*Asignacion, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, internal.ErrAsignacionNotFound
	}
	return a, nil
}

func (s *Service) GetAll() ([]*Asignacion, error) {
	return s.repo.GetAll()
}

func (s *Service) GetRecent(limit int) ([]*Asignacion, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.GetRecent(limit)
}

func (s *Service) Update(id string, dto UpdateAsignacionDTO) (*Asignacion, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(dto.EstudianteID, dto.EmpresaID); err != nil {
		return nil, err
	}

	a, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	a.ApplyUpdate(dto)
	if err := s.repo.Update(a); err != nil {
		s.logger.Error("failed to update asignacion", "asignacion_id", id, "error", err)
		return nil, err
	}

	return a, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete asignacion", "asignacion_id", id, "error", err)
		return err
	}

	s.logger.Info("asignacion deleted", "asignacion_id", id)

	if s.bus != nil {
		_ = s.bus.Publish(context.Background(), events.NewAsignacionDeleted(id))
	}
	return nil
}

func (s *Service) checkReferences(estudianteID, empresaID string) error {
	ok, err := s.estudiantes.Exists(estudianteID)
	if err != nil {
		return err
	}
	if !ok {
		return internal.ErrEstudianteNotFound
	}

	ok, err = s.empresas.Exists(empresaID)
	if err != nil {
		return err
	}
	if !ok {
		return internal.ErrEmpresaNotFound
	}
	return nil
}
