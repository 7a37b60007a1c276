package repository

import (
	"context"

	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	model "taskflow.com/taskflow/internal/models"
)

// ListFilters are the optional exact-match predicates for List. A nil field
// means the predicate is not applied; supplied predicates are ANDed.
type ListFilters struct {
	Status   *constants.TaskStatus
	Priority *constants.TaskPriority
	Assignee *string
}

// TaskRepository is the authoritative store of task records. Implementations
// return detached copies, never live aliases into the store, and List always
// orders by created_at ascending. Update applies only the fields set in the
// request, atomically with respect to other mutations of the same id.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	List(ctx context.Context, filters ListFilters) ([]model.Task, error)
	Update(ctx context.Context, id string, changes dto.UpdateTaskRequest) (*model.Task, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
