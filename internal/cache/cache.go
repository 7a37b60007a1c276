package cache

import (
	"context"

	model "taskflow.com/taskflow/internal/models"
)

// TaskCache is a best-effort lookaside store for single-task reads. A failed
// cache operation never fails the request; implementations log and move on.
type TaskCache interface {
	Get(ctx context.Context, id string) (*model.Task, bool)
	Set(ctx context.Context, task *model.Task)
	Invalidate(ctx context.Context, id string)
}
