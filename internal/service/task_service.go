package service

import (
	"context"
	"fmt"
	"time"
	"todoList/internal/logger"
	"todoList/internal/models/task"

	"go.uber.org/zap"
)

// здесь вся логика над набором задач, хранилище только читает и пишет файл

type TaskService struct {
	repo TaskRepository
	now  func() time.Time
}

func NewTaskService(repo TaskRepository, options ...Option) *TaskService {
	s := &TaskService{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка хранилища: %w", err)
	}
	return nil
}

// Add добавляет задачу в конец набора. due распознаётся через task.ResolveDue,
// нераспознанное значение просто не задаёт срок.
func (s *TaskService) Add(ctx context.Context, description, due string) (*task.Task, error) {
	var created *task.Task

	err := s.repo.Mutate(ctx, func(tasks []*task.Task) ([]*task.Task, bool, error) {
		now := s.now()
		created = task.New(
			task.NextID(tasks),
			description,
			now,
			task.WithDueDate(task.ResolveDue(due, now)),
		)
		return append(tasks, created), true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("добавление задачи: %w", err)
	}

	logger.Info("Service: Задача добавлена",
		zap.Int("task_id", created.ID),
		zap.Bool("has_due", created.DueDate != nil))
	return created, nil
}

// Complete отмечает задачу выполненной. Для уже выполненной задачи время
// выполнения обновляется. false означает, что задачи с таким id нет.
func (s *TaskService) Complete(ctx context.Context, id int) (bool, error) {
	found := false

	err := s.repo.Mutate(ctx, func(tasks []*task.Task) ([]*task.Task, bool, error) {
		for _, t := range tasks {
			if t.ID == id {
				t.Complete(s.now())
				found = true
				break
			}
		}
		return tasks, found, nil
	})
	if err != nil {
		return false, fmt.Errorf("выполнение задачи %d: %w", id, err)
	}

	if !found {
		logger.Info("Service: Задача не найдена", zap.Int("target_id", id))
		return false, nil
	}
	logger.Info("Service: Задача выполнена", zap.Int("task_id", id))
	return true, nil
}

// Delete удаляет задачу. Файл перезаписывается только если что-то удалено.
func (s *TaskService) Delete(ctx context.Context, id int) (bool, error) {
	removed := false

	err := s.repo.Mutate(ctx, func(tasks []*task.Task) ([]*task.Task, bool, error) {
		kept := tasks[:0]
		for _, t := range tasks {
			if t.ID == id {
				removed = true
				continue
			}
			kept = append(kept, t)
		}
		return kept, removed, nil
	})
	if err != nil {
		return false, fmt.Errorf("удаление задачи %d: %w", id, err)
	}

	if !removed {
		logger.Info("Service: Задача не найдена", zap.Int("target_id", id))
		return false, nil
	}
	logger.Info("Service: Задача удалена", zap.Int("task_id", id))
	return true, nil
}

// List возвращает задачи в порядке файла; без showAll только невыполненные.
func (s *TaskService) List(ctx context.Context, showAll bool) ([]*task.Task, error) {
	tasks, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	if showAll {
		return tasks, nil
	}

	res := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsComplete() {
			res = append(res, t)
		}
	}
	return res, nil
}

func (s *TaskService) Get(ctx context.Context, id int) (*task.Task, error) {
	tasks, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение задачи: %w", err)
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, NewNotFound(id)
}

// Overdue возвращает невыполненные задачи с прошедшим сроком.
func (s *TaskService) Overdue(ctx context.Context) ([]*task.Task, error) {
	start := time.Now()

	tasks, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение просроченных задач: %w", err)
	}

	now := s.now()
	res := make([]*task.Task, 0)
	for _, t := range tasks {
		if t.IsOverdue(now) {
			res = append(res, t)
		}
	}

	logger.Debug("Service: Проверка просроченных задач",
		zap.Duration("ms", time.Since(start)),
		zap.Int("checked", len(tasks)),
		zap.Int("overdue", len(res)))
	return res, nil
}
