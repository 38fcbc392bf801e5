package ports

import (
	"context"

	"github.com/taskcollab/backend/internal/domain"
)

type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	AssignedTo  string
}

// UpdateTaskInput is a partial overlay: nil fields are left unchanged.
// An explicit empty AssignedTo unassigns the task.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	AssignedTo  *string
}

type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	GetTasks(ctx context.Context) ([]*domain.Task, error)
	GetTasksByUser(ctx context.Context, userID string) ([]*domain.Task, error)
}
