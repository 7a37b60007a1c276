package model

import (
	"time"

	"taskflow.com/taskflow/internal/constants"
)

// Task is the single entity this service tracks. Status and priority are
// persisted as their literal string values.
type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"size:200;not null" json:"title"`
	Description *string                `gorm:"size:1000" json:"description"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Priority    constants.TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	Assignee    *string                `gorm:"size:100" json:"assignee"`
	DueDate     *time.Time             `json:"due_date"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// Clone returns a deep copy sharing no pointers with the receiver, so stored
// records never leak as mutable aliases.
func (t *Task) Clone() *Task {
	c := *t
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	if t.Assignee != nil {
		a := *t.Assignee
		c.Assignee = &a
	}
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	return &c
}
