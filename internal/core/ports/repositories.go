package ports

import (
	"context"

	"github.com/taskcollab/backend/internal/domain"
)

// TaskRepository owns the task's store schema and the mutation pipeline that
// keeps the primary record, the two indexes, the cache, and the change-event
// stream consistent. Queries are served cache-aside; FindByID returns
// (nil, nil) when no such task exists.
type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, old, updated *domain.Task) error
	Delete(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	FindAll(ctx context.Context) ([]*domain.Task, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.Task, error)
}
