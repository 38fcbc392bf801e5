package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskcollab/backend/internal/core/ports"
	"github.com/taskcollab/backend/internal/domain"
	"github.com/taskcollab/backend/internal/infrastructure/logger"
)

type TaskServiceConfig struct {
	Repository ports.TaskRepository
	Logger     *logger.Logger
}

// TaskService validates inputs and drives the repository's mutation
// pipeline. Updates never mutate the loaded snapshot: the overlay produces
// a fresh value so the repository can publish both states in the change
// event.
type TaskService struct {
	repo ports.TaskRepository
	log  *logger.Logger
}

func NewTaskService(cfg TaskServiceConfig) *TaskService {
	return &TaskService{repo: cfg.Repository, log: cfg.Logger}
}

func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTaskTitleRequired
	}

	status := domain.TaskStatusPending
	if input.Status != "" {
		status = domain.TaskStatus(input.Status)
		if !status.Valid() {
			return nil, ErrTaskInvalidStatus
		}
	}

	now := time.Now().UnixMilli()
	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		AssignedTo:  input.AssignedTo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, task); err != nil {
		s.log.Errorw("task_create_failed", "id", task.ID, "error", err)
		return nil, err
	}

	s.log.Infow("task_create_ok", "id", task.ID, "assigned_to", task.AssignedTo)
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrTaskNotFound
	}

	updated := *current
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTaskTitleRequired
		}
		updated.Title = *input.Title
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	if input.Status != nil {
		status := domain.TaskStatus(*input.Status)
		if !status.Valid() {
			return nil, ErrTaskInvalidStatus
		}
		updated.Status = status
	}
	if input.AssignedTo != nil {
		updated.AssignedTo = *input.AssignedTo
	}
	updated.UpdatedAt = time.Now().UnixMilli()

	if err := s.repo.Update(ctx, current, &updated); err != nil {
		s.log.Errorw("task_update_failed", "id", id, "error", err)
		return nil, err
	}

	s.log.Infow("task_update_ok", "id", id)
	return &updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrTaskNotFound
	}

	if err := s.repo.Delete(ctx, current); err != nil {
		s.log.Errorw("task_delete_failed", "id", id, "error", err)
		return err
	}

	s.log.Infow("task_delete_ok", "id", id)
	return nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) GetTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.repo.FindAll(ctx)
}

func (s *TaskService) GetTasksByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.repo.FindByUser(ctx, userID)
}
