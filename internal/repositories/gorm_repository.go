package repository

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	dto "taskflow.com/taskflow/internal/data_models"
	errs "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
)

type GormTaskRepository struct {
	db *gorm.DB
}

func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, storageFailure("create", err)
	}
	return task.Clone(), nil
}

func (r *GormTaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTaskNotFound
		}
		return nil, storageFailure("find", err)
	}
	return &task, nil
}

func (r *GormTaskRepository) List(ctx context.Context, filters ListFilters) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Order("created_at asc")
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Priority != nil {
		query = query.Where("priority = ?", *filters.Priority)
	}
	if filters.Assignee != nil {
		query = query.Where("assignee = ?", *filters.Assignee)
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, storageFailure("list", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (r *GormTaskRepository) Update(ctx context.Context, id string, changes dto.UpdateTaskRequest) (*model.Task, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if changes.Title.Set {
		updates["title"] = strings.TrimSpace(changes.Title.Value)
	}
	if changes.Description.Set {
		updates["description"] = nullable(changes.Description)
	}
	if changes.Status.Set {
		updates["status"] = changes.Status.Value
	}
	if changes.Priority.Set {
		updates["priority"] = changes.Priority.Value
	}
	if changes.Assignee.Set {
		updates["assignee"] = nullable(changes.Assignee)
	}
	if changes.DueDate.Set {
		updates["due_date"] = nullable(changes.DueDate)
	}

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, storageFailure("update", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, errs.ErrTaskNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *GormTaskRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return storageFailure("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrTaskNotFound
	}
	return nil
}

func (r *GormTaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&count).Error; err != nil {
		return 0, storageFailure("count", err)
	}
	return count, nil
}

// nullable maps an explicit JSON null onto a SQL NULL.
func nullable[T any](o dto.Optional[T]) interface{} {
	if !o.Valid {
		return nil
	}
	return o.Value
}

func storageFailure(op string, err error) error {
	log.Printf("storage: %s failed: %v", op, err)
	return errs.ErrStorage
}
