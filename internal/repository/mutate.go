package repository

import "todoList/internal/models/task"

// MutateFunc получает все задачи хранилища и возвращает новый набор.
// changed == false означает, что перезаписывать хранилище не нужно.
type MutateFunc func(tasks []*task.Task) (next []*task.Task, changed bool, err error)
