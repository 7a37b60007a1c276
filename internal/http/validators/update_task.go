package validators

import (
	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	errs "taskflow.com/taskflow/internal/errors"
)

// ValidateUpdateTaskRequest checks only the fields present in the partial
// payload. Title, status and priority are required on the record, so an
// explicit null for them is rejected; the other optional fields may be
// nulled to clear them.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title.Set {
		if !r.Title.Valid {
			return errs.Validation("title", "title cannot be null")
		}
		if err := validateTitle(r.Title.Value); err != nil {
			return err
		}
	}
	if r.Description.Set && r.Description.Valid {
		if err := validateDescription(r.Description.Value); err != nil {
			return err
		}
	}
	if r.Status.Set {
		if !r.Status.Valid {
			return errs.Validation("status", "status cannot be null")
		}
		if !constants.ValidStatus(r.Status.Value) {
			return invalidStatus(r.Status.Value)
		}
	}
	if r.Priority.Set {
		if !r.Priority.Valid {
			return errs.Validation("priority", "priority cannot be null")
		}
		if !constants.ValidPriority(r.Priority.Value) {
			return invalidPriority(r.Priority.Value)
		}
	}
	if r.Assignee.Set && r.Assignee.Valid {
		if err := validateAssignee(r.Assignee.Value); err != nil {
			return err
		}
	}
	return nil
}
