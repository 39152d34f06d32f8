package service

import (
	"context"
	"todoList/internal/models/task"
	repo "todoList/internal/repository"
)

type TaskRepository interface {
	HealthCheck(context.Context) error
	Load(context.Context) ([]*task.Task, error)
	Save(context.Context, []*task.Task) error
	Mutate(context.Context, repo.MutateFunc) error
}
