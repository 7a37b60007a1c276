package validators

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	errs "taskflow.com/taskflow/internal/errors"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxAssigneeLen    = 100
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if err := validateTitle(r.Title); err != nil {
		return err
	}
	if r.Description != nil {
		if err := validateDescription(*r.Description); err != nil {
			return err
		}
	}
	if r.Status != nil && !constants.ValidStatus(*r.Status) {
		return invalidStatus(*r.Status)
	}
	if r.Priority != nil && !constants.ValidPriority(*r.Priority) {
		return invalidPriority(*r.Priority)
	}
	if r.Assignee != nil {
		if err := validateAssignee(*r.Assignee); err != nil {
			return err
		}
	}
	return nil
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return errs.Validation("title", "title cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxTitleLen {
		return errs.Validation("title", fmt.Sprintf("title must be at most %d characters", maxTitleLen))
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return errs.Validation("description", fmt.Sprintf("description must be at most %d characters", maxDescriptionLen))
	}
	return nil
}

func validateAssignee(assignee string) error {
	if utf8.RuneCountInString(assignee) > maxAssigneeLen {
		return errs.Validation("assignee", fmt.Sprintf("assignee must be at most %d characters", maxAssigneeLen))
	}
	return nil
}

func invalidStatus(s constants.TaskStatus) error {
	return errs.Validation("status", fmt.Sprintf("invalid status %q", s))
}

func invalidPriority(p constants.TaskPriority) error {
	return errs.Validation("priority", fmt.Sprintf("invalid priority %q", p))
}
