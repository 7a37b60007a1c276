package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

type TaskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTask assigns id and timestamps, applies the todo/medium defaults and
// stores the record. Input is assumed validated at the HTTP boundary.
func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	now := time.Now().UTC()

	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      constants.StatusTodo,
		Priority:    constants.PriorityMedium,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}

	return s.repo.Create(ctx, task)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, filters repository.ListFilters) ([]model.Task, error) {
	return s.repo.List(ctx, filters)
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, changes dto.UpdateTaskRequest) (*model.Task, error) {
	return s.repo.Update(ctx, id, changes)
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) CountTasks(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
