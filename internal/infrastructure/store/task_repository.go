package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/taskcollab/backend/internal/core/ports"
	"github.com/taskcollab/backend/internal/domain"
	"github.com/taskcollab/backend/internal/infrastructure/logger"
)

// Store key namespace. The primary record is a hash per task, the indexes
// are sets of task ids, the cache entries are JSON strings with a TTL.
const (
	taskKeyPrefix      = "task:"
	taskIndexKey       = "tasks"
	userTasksKeyPrefix = "user:tasks:"

	cacheTaskPrefix      = "cache:task:"
	cacheTasksAllKey     = "cache:tasks:all"
	cacheTasksUserPrefix = "cache:tasks:user:"
)

type taskRepository struct {
	rdb   *redis.Client
	cache *Cache
	log   *logger.Logger
}

func NewTaskRepository(rdb *redis.Client, cache *Cache, log *logger.Logger) ports.TaskRepository {
	return &taskRepository{rdb: rdb, cache: cache, log: log}
}

// Insert writes the primary record, adds the id to the global and (when
// assigned) per-assignee indexes, announces the task and evicts the
// aggregate caches. The steps are not atomic; on a mid-pipeline failure the
// error propagates and the store is left ahead of its indexes or cache.
func (r *taskRepository) Insert(ctx context.Context, task *domain.Task) error {
	key := taskKeyPrefix + task.ID
	if err := r.rdb.HSet(ctx, key, task.Fields()).Err(); err != nil {
		r.log.Errorw("task_repo_insert_failed", "id", task.ID, "error", err)
		return fmt.Errorf("write task %s: %w", task.ID, err)
	}

	if err := r.rdb.SAdd(ctx, taskIndexKey, task.ID).Err(); err != nil {
		return fmt.Errorf("index task %s: %w", task.ID, err)
	}
	if task.AssignedTo != "" {
		if err := r.rdb.SAdd(ctx, userTasksKeyPrefix+task.AssignedTo, task.ID).Err(); err != nil {
			return fmt.Errorf("index task %s for user %s: %w", task.ID, task.AssignedTo, err)
		}
	}

	if err := r.publish(ctx, domain.TaskEvent{
		Type:   domain.EventTaskCreated,
		TaskID: task.ID,
		Task:   task,
	}); err != nil {
		return err
	}

	stale := []string{cacheTasksAllKey}
	if task.AssignedTo != "" {
		stale = append(stale, cacheTasksUserPrefix+task.AssignedTo)
	}
	return r.cache.Invalidate(ctx, stale...)
}

// Update rewrites the primary record from the new snapshot, migrates the id
// between per-assignee indexes when the assignee changed, and publishes the
// old and new snapshots together.
func (r *taskRepository) Update(ctx context.Context, old, updated *domain.Task) error {
	key := taskKeyPrefix + updated.ID
	if err := r.rdb.HSet(ctx, key, updated.Fields()).Err(); err != nil {
		r.log.Errorw("task_repo_update_failed", "id", updated.ID, "error", err)
		return fmt.Errorf("write task %s: %w", updated.ID, err)
	}

	if old.AssignedTo != updated.AssignedTo {
		if old.AssignedTo != "" {
			if err := r.rdb.SRem(ctx, userTasksKeyPrefix+old.AssignedTo, updated.ID).Err(); err != nil {
				return fmt.Errorf("unindex task %s for user %s: %w", updated.ID, old.AssignedTo, err)
			}
			if err := r.cache.Invalidate(ctx, cacheTasksUserPrefix+old.AssignedTo); err != nil {
				return err
			}
		}
		if updated.AssignedTo != "" {
			if err := r.rdb.SAdd(ctx, userTasksKeyPrefix+updated.AssignedTo, updated.ID).Err(); err != nil {
				return fmt.Errorf("index task %s for user %s: %w", updated.ID, updated.AssignedTo, err)
			}
			if err := r.cache.Invalidate(ctx, cacheTasksUserPrefix+updated.AssignedTo); err != nil {
				return err
			}
		}
	}

	if err := r.publish(ctx, domain.TaskEvent{
		Type:    domain.EventTaskUpdated,
		TaskID:  updated.ID,
		Task:    updated,
		Changes: &domain.TaskChanges{From: old, To: updated},
	}); err != nil {
		return err
	}

	return r.cache.Invalidate(ctx, cacheTasksAllKey, cacheTaskPrefix+updated.ID)
}

// Delete removes the primary record and every index membership, announces
// the deletion and evicts the affected cache entries.
func (r *taskRepository) Delete(ctx context.Context, task *domain.Task) error {
	key := taskKeyPrefix + task.ID
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		r.log.Errorw("task_repo_delete_failed", "id", task.ID, "error", err)
		return fmt.Errorf("delete task %s: %w", task.ID, err)
	}

	if err := r.rdb.SRem(ctx, taskIndexKey, task.ID).Err(); err != nil {
		return fmt.Errorf("unindex task %s: %w", task.ID, err)
	}
	if task.AssignedTo != "" {
		if err := r.rdb.SRem(ctx, userTasksKeyPrefix+task.AssignedTo, task.ID).Err(); err != nil {
			return fmt.Errorf("unindex task %s for user %s: %w", task.ID, task.AssignedTo, err)
		}
		if err := r.cache.Invalidate(ctx, cacheTasksUserPrefix+task.AssignedTo); err != nil {
			return err
		}
	}

	if err := r.publish(ctx, domain.TaskEvent{
		Type:   domain.EventTaskDeleted,
		TaskID: task.ID,
	}); err != nil {
		return err
	}

	return r.cache.Invalidate(ctx, cacheTasksAllKey, cacheTaskPrefix+task.ID)
}

func (r *taskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	return GetOrSet(ctx, r.cache, cacheTaskPrefix+id, func(ctx context.Context) (*domain.Task, error) {
		return r.readTask(ctx, id)
	})
}

func (r *taskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	return GetOrSet(ctx, r.cache, cacheTasksAllKey, func(ctx context.Context) ([]*domain.Task, error) {
		ids, err := r.rdb.SMembers(ctx, taskIndexKey).Result()
		if err != nil {
			return nil, fmt.Errorf("read task index: %w", err)
		}
		return r.readTasks(ctx, ids)
	})
}

func (r *taskRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	return GetOrSet(ctx, r.cache, cacheTasksUserPrefix+userID, func(ctx context.Context) ([]*domain.Task, error) {
		ids, err := r.rdb.SMembers(ctx, userTasksKeyPrefix+userID).Result()
		if err != nil {
			return nil, fmt.Errorf("read task index for user %s: %w", userID, err)
		}
		return r.readTasks(ctx, ids)
	})
}

// readTask reads the primary record directly, bypassing the per-task cache.
// A missing or empty record yields (nil, nil).
func (r *taskRepository) readTask(ctx context.Context, id string) (*domain.Task, error) {
	fields, err := r.rdb.HGetAll(ctx, taskKeyPrefix+id).Result()
	if err != nil {
		return nil, fmt.Errorf("read task %s: %w", id, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return domain.TaskFromFields(fields), nil
}

func (r *taskRepository) readTasks(ctx context.Context, ids []string) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		task, err := r.readTask(ctx, id)
		if err != nil {
			return nil, err
		}
		// An id can linger in an index briefly after its record is gone.
		if task == nil {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *taskRepository) publish(ctx context.Context, event domain.TaskEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	if err := r.rdb.Publish(ctx, domain.TaskUpdatesChannel, payload).Err(); err != nil {
		r.log.Errorw("task_repo_publish_failed", "type", event.Type, "id", event.TaskID, "error", err)
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}
	return nil
}
