package dto

import (
	"time"

	"taskflow.com/taskflow/internal/constants"
)

// CreateTaskRequest carries the create payload. Optional fields default when
// absent, so null and absent are equivalent here.
type CreateTaskRequest struct {
	Title       string                  `json:"title"`
	Description *string                 `json:"description"`
	Status      *constants.TaskStatus   `json:"status"`
	Priority    *constants.TaskPriority `json:"priority"`
	Assignee    *string                 `json:"assignee"`
	DueDate     *time.Time              `json:"due_date"`
}

// UpdateTaskRequest carries a partial update. Fields absent from the payload
// are left untouched; an explicit null clears description, assignee or
// due_date and is rejected for title, status and priority.
type UpdateTaskRequest struct {
	Title       Optional[string]                 `json:"title"`
	Description Optional[string]                 `json:"description"`
	Status      Optional[constants.TaskStatus]   `json:"status"`
	Priority    Optional[constants.TaskPriority] `json:"priority"`
	Assignee    Optional[string]                 `json:"assignee"`
	DueDate     Optional[time.Time]              `json:"due_date"`
}
