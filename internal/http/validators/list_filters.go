package validators

import (
	"taskflow.com/taskflow/internal/constants"
	repository "taskflow.com/taskflow/internal/repositories"
)

// ParseListFilters turns the raw query parameters into repository filters.
// Values outside the enumerations are rejected rather than silently matching
// nothing.
func ParseListFilters(status, priority, assignee string) (repository.ListFilters, error) {
	var filters repository.ListFilters

	if status != "" {
		s := constants.TaskStatus(status)
		if !constants.ValidStatus(s) {
			return filters, invalidStatus(s)
		}
		filters.Status = &s
	}
	if priority != "" {
		p := constants.TaskPriority(priority)
		if !constants.ValidPriority(p) {
			return filters, invalidPriority(p)
		}
		filters.Priority = &p
	}
	if assignee != "" {
		filters.Assignee = &assignee
	}

	return filters, nil
}
