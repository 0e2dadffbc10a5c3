package task

import (
	"strings"
	"time"

	"todo-list-app/internal/model"
)

func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrTitleRequired
	}
	return trimmed, nil
}

func ValidatePriority(s string) (model.Priority, error) {
	p, ok := model.ParsePriority(s)
	if !ok {
		return "", &FieldError{Field: "priority", Msg: "priority must be one of low, medium, high"}
	}
	return p, nil
}

func ValidateDueDate(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if _, err := time.Parse(model.DueDateLayout, trimmed); err != nil {
		return "", &FieldError{Field: "dueDate", Msg: "dueDate must be YYYY-MM-DD"}
	}
	return trimmed, nil
}
