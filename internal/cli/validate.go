package cli

import (
	"strconv"
	"strings"

	"todoList/internal/service"
)

func parseTaskID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, service.NewValidationError("task id", "must be a positive integer, got "+strconv.Quote(raw))
	}
	if id <= 0 {
		return 0, service.NewValidationError("task id", "must be a positive integer, got "+strconv.Itoa(id))
	}
	return id, nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return service.NewValidationError("description", "must not be empty")
	}
	return nil
}
