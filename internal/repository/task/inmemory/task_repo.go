package inmemory

import (
	"context"
	"sync"
	"todoList/internal/logger"
	"todoList/internal/models/task"
	repo "todoList/internal/repository"

	"go.uber.org/zap"
)

// TaskStorage держит задачи в памяти процесса. Семантика та же, что у
// файлового хранилища: чтение и запись всегда целым набором.
type TaskStorage struct {
	tasks []*task.Task
	mtx   *sync.RWMutex
	saves int
}

func NewTaskStorage(initial ...*task.Task) *TaskStorage {
	return &TaskStorage{
		tasks: cloneAll(initial),
		mtx:   &sync.RWMutex{},
	}
}

func (s *TaskStorage) HealthCheck(ctx context.Context) error {
	logger.Info("Repository: Хранилище в памяти доступно")
	return nil
}

func (s *TaskStorage) Load(ctx context.Context) ([]*task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return cloneAll(s.tasks), nil
}

func (s *TaskStorage) Save(ctx context.Context, tasks []*task.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tasks = cloneAll(tasks)
	s.saves++
	return nil
}

func (s *TaskStorage) Mutate(ctx context.Context, fn repo.MutateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()

	next, changed, err := fn(cloneAll(s.tasks))
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	s.tasks = cloneAll(next)
	s.saves++
	logger.Debug("Repository: Задачи сохранены в памяти", zap.Int("count", len(s.tasks)))
	return nil
}

// Saves возвращает число фактических перезаписей набора.
func (s *TaskStorage) Saves() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.saves
}

func cloneAll(tasks []*task.Task) []*task.Task {
	res := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, clone(t))
	}
	return res
}

func clone(t *task.Task) *task.Task {
	c := *t
	if t.CompletedAt != nil {
		v := *t.CompletedAt
		c.CompletedAt = &v
	}
	if t.DueDate != nil {
		v := *t.DueDate
		c.DueDate = &v
	}
	return &c
}
