package cache

import (
	"context"

	dto "taskflow.com/taskflow/internal/data_models"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

// CachingRepository decorates a TaskRepository with a read-through cache for
// single-record lookups. Mutations write through: Create and Update re-cache
// the fresh record, Delete invalidates. List and Count always hit the store.
type CachingRepository struct {
	inner repository.TaskRepository
	cache TaskCache
}

func NewCachingRepository(inner repository.TaskRepository, cache TaskCache) *CachingRepository {
	return &CachingRepository{
		inner: inner,
		cache: cache,
	}
}

func (r *CachingRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	created, err := r.inner.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, created)
	return created, nil
}

func (r *CachingRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	if task, ok := r.cache.Get(ctx, id); ok {
		return task, nil
	}

	task, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, task)
	return task, nil
}

func (r *CachingRepository) List(ctx context.Context, filters repository.ListFilters) ([]model.Task, error) {
	return r.inner.List(ctx, filters)
}

func (r *CachingRepository) Update(ctx context.Context, id string, changes dto.UpdateTaskRequest) (*model.Task, error) {
	updated, err := r.inner.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, updated)
	return updated, nil
}

func (r *CachingRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, id)
	return nil
}

func (r *CachingRepository) Count(ctx context.Context) (int64, error) {
	return r.inner.Count(ctx)
}
