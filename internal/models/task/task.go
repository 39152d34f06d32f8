package task

import (
	"time"
)

type Task struct {
	ID          int        `json:"id"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type Status string

const StatusPending Status = "pending"
const StatusDone Status = "done"

func (t *Task) IsComplete() bool {
	return t.CompletedAt != nil
}

func (t *Task) Status() Status {
	if t.IsComplete() {
		return StatusDone
	}
	return StatusPending
}

// IsOverdue - срок задан, прошёл, а задача не выполнена.
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.IsComplete() && t.DueDate != nil && t.DueDate.Before(now)
}

// Complete отмечает задачу выполненной. Повторный вызов обновляет время.
func (t *Task) Complete(at time.Time) {
	t.CompletedAt = &at
}

// NextID возвращает id для новой задачи: максимум существующих + 1.
// На порядок записей в файле не полагаемся.
func NextID(tasks []*Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}
