package task

import (
	"time"
)

type TaskOption func(*Task)

func New(id int, description string, createdAt time.Time, options ...TaskOption) *Task {
	t := &Task{
		ID:          id,
		Description: description,
		CreatedAt:   createdAt,
	}
	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

func WithDueDate(due *time.Time) TaskOption {
	if due == nil {
		return nil
	}
	return func(task *Task) {
		d := *due
		task.DueDate = &d
	}
}

func WithCompletedAt(completedAt time.Time) TaskOption {
	if completedAt.IsZero() {
		return nil
	}
	return func(task *Task) {
		task.CompletedAt = &completedAt
	}
}
