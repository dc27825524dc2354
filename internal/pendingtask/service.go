package pendingtask

import (
	"context"
	"log/slog"

	"github.com/ceac-fct/placement-management/internal"
	"github.com/ceac-fct/placement-management/internal/core/events"
)

// Repository queries are scoped by the owning user. A user can only ever see
// and delete their own drafts.
type Repository interface {
	Create(t *PendingTask) error
	GetByID(userID, id string) (*PendingTask, error)
	GetByUser(userID string) ([]*PendingTask, error)
	Delete(userID, id string) error
}

type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

func (s *Service) Add(userID string, dto CreatePendingTaskDTO) (*PendingTask, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	t := NewPendingTask(userID, dto)
	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to save pending task", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("pending task saved", "task_id", t.ID, "user_id", userID, "type", t.Type)

	if s.bus != nil {
		_ = s.bus.Publish(context.Background(), events.NewPendingTaskCreated(t.ID, userID, string(t.Type)))
	}

	return t, nil
}

func (s *Service) Get(userID, id string) (*PendingTask, error) {
	t, err := s.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, internal.ErrPendingTaskNotFound
	}
	return t, nil
}

// List returns the user's drafts, newest first.
func (s *Service) List(userID string) ([]*PendingTask, error) {
	return s.repo.GetByUser(userID)
}

func (s *Service) Count(userID string) (int, error) {
	tasks, err := s.repo.GetByUser(userID)
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// Remove deletes a draft. Removing a draft that no longer exists is not an
// error: a draft consumed by a concurrent submission is already gone.
func (s *Service) Remove(userID, id string) error {
	if err := s.repo.Delete(userID, id); err != nil {
		s.logger.Error("failed to remove pending task", "task_id", id, "user_id", userID, "error", err)
		return err
	}

	if s.bus != nil {
		_ = s.bus.Publish(context.Background(), events.NewPendingTaskRemoved(id))
	}
	return nil
}
