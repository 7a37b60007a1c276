package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	dto "taskflow.com/taskflow/internal/data_models"
	errs "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
)

// MemoryTaskRepository keeps all records in process memory. A single mutex
// serializes mutations, which makes every read-modify-write of a record
// atomic; readers always get clones.
type MemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]*model.Task
	order []string
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks: make(map[string]*model.Task),
	}
}

func (r *MemoryTaskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := task.Clone()
	r.tasks[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return stored.Clone(), nil
}

func (r *MemoryTaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, errs.ErrTaskNotFound
	}
	return task.Clone(), nil
}

func (r *MemoryTaskRepository) List(ctx context.Context, filters ListFilters) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, 0, len(r.order))
	for _, id := range r.order {
		task := r.tasks[id]
		if !matches(task, filters) {
			continue
		}
		tasks = append(tasks, *task.Clone())
	}

	// Insertion order already approximates creation order; the stable sort
	// pins the documented created_at ascending contract.
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	return tasks, nil
}

func (r *MemoryTaskRepository) Update(ctx context.Context, id string, changes dto.UpdateTaskRequest) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, errs.ErrTaskNotFound
	}

	if changes.Title.Set {
		task.Title = strings.TrimSpace(changes.Title.Value)
	}
	if changes.Description.Set {
		task.Description = optionalPtr(changes.Description)
	}
	if changes.Status.Set {
		task.Status = changes.Status.Value
	}
	if changes.Priority.Set {
		task.Priority = changes.Priority.Value
	}
	if changes.Assignee.Set {
		task.Assignee = optionalPtr(changes.Assignee)
	}
	if changes.DueDate.Set {
		task.DueDate = optionalPtr(changes.DueDate)
	}
	task.UpdatedAt = time.Now().UTC()

	return task.Clone(), nil
}

func (r *MemoryTaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return errs.ErrTaskNotFound
	}
	delete(r.tasks, id)

	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryTaskRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.tasks)), nil
}

func matches(task *model.Task, filters ListFilters) bool {
	if filters.Status != nil && task.Status != *filters.Status {
		return false
	}
	if filters.Priority != nil && task.Priority != *filters.Priority {
		return false
	}
	if filters.Assignee != nil {
		if task.Assignee == nil || *task.Assignee != *filters.Assignee {
			return false
		}
	}
	return true
}

func optionalPtr[T any](o dto.Optional[T]) *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
