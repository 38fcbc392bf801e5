package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskcollab/backend/internal/config"
	"github.com/taskcollab/backend/internal/core/ports"
	"github.com/taskcollab/backend/internal/domain"
	"github.com/taskcollab/backend/internal/infrastructure/logger"
)

type fakeTaskRepo struct {
	tasks   map[string]*domain.Task
	inserts int
	updates int
	deletes int
	lastOld *domain.Task
	lastNew *domain.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (f *fakeTaskRepo) Insert(ctx context.Context, task *domain.Task) error {
	f.inserts++
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, old, updated *domain.Task) error {
	f.updates++
	f.lastOld = old
	f.lastNew = updated
	f.tasks[updated.ID] = updated
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, task *domain.Task) error {
	f.deletes++
	delete(f.tasks, task.ID)
	return nil
}

func (f *fakeTaskRepo) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	return f.tasks[id], nil
}

func (f *fakeTaskRepo) FindAll(ctx context.Context) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(f.tasks))
	for _, task := range f.tasks {
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (f *fakeTaskRepo) FindByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for _, task := range f.tasks {
		if task.AssignedTo == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func newTestService(t *testing.T) (*TaskService, *fakeTaskRepo) {
	t.Helper()
	log, err := logger.New(config.LoggerConfig{
		Level:       "error",
		Encoding:    "console",
		OutputPaths: []string{"stderr"},
	})
	require.NoError(t, err)
	repo := newFakeTaskRepo()
	return NewTaskService(TaskServiceConfig{Repository: repo, Logger: log}), repo
}

func TestCreateTaskAssignsDefaults(t *testing.T) {
	svc, repo := newTestService(t)

	before := time.Now().UnixMilli()
	task, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{Title: "T"})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Empty(t, task.AssignedTo)
	assert.GreaterOrEqual(t, task.CreatedAt, before)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	assert.Equal(t, 1, repo.inserts)
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	svc, repo := newTestService(t)

	for _, title := range []string{"", "   "} {
		_, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{Title: title})
		assert.ErrorIs(t, err, ErrTaskTitleRequired)
	}
	assert.Zero(t, repo.inserts)
}

func TestCreateTaskRejectsUnknownStatus(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{Title: "T", Status: "done"})
	assert.ErrorIs(t, err, ErrTaskInvalidStatus)
	assert.Zero(t, repo.inserts)
}

func TestUpdateTaskOverlaysFields(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, ports.CreateTaskInput{
		Title:       "T",
		Description: "d",
		AssignedTo:  "user1",
	})
	require.NoError(t, err)

	status := string(domain.TaskStatusCompleted)
	updated, err := svc.UpdateTask(ctx, created.ID, ports.UpdateTaskInput{Status: &status})
	require.NoError(t, err)

	// Untouched fields survive the overlay; the snapshots are distinct values.
	assert.Equal(t, "T", updated.Title)
	assert.Equal(t, "d", updated.Description)
	assert.Equal(t, "user1", updated.AssignedTo)
	assert.Equal(t, domain.TaskStatusCompleted, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.NotSame(t, repo.lastOld, repo.lastNew)
	assert.Equal(t, domain.TaskStatusPending, repo.lastOld.Status)
}

func TestUpdateTaskRefreshesUpdatedAtWithoutChanges(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: "T"})
	require.NoError(t, err)

	// No dirty-checking: an empty overlay still writes and publishes.
	updated, err := svc.UpdateTask(ctx, created.ID, ports.UpdateTaskInput{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, updated.UpdatedAt, created.UpdatedAt)
	assert.Equal(t, 1, repo.updates)
}

func TestUpdateTaskUnassigns(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: "T", AssignedTo: "user1"})
	require.NoError(t, err)

	empty := ""
	updated, err := svc.UpdateTask(ctx, created.ID, ports.UpdateTaskInput{AssignedTo: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.AssignedTo)
}

func TestUpdateTaskNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	title := "X"
	_, err := svc.UpdateTask(context.Background(), "missing", ports.UpdateTaskInput{Title: &title})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: "T"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, created.ID))
	assert.Equal(t, 1, repo.deletes)

	assert.ErrorIs(t, svc.DeleteTask(ctx, created.ID), ErrTaskNotFound)

	_, err = svc.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
