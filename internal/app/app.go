package app

import (
	"context"
	"fmt"
	"todoList/internal/config"
	"todoList/internal/logger"
	"todoList/internal/repository/task/csvfile"
	"todoList/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type App struct {
	config       *config.Config
	service      *service.TaskService
	invocationID string
	shutdowns    []func() // выполняются в Close в обратном порядке
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development, a.config.Logging.Level); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}
	a.invocationID = uuid.NewString()
	logger.With(zap.String("invocation_id", a.invocationID))

	a.shutdowns = append(a.shutdowns, func() {
		logger.Debug("Завершение работы логгирования...")
		logger.Sync()
	})

	storage, err := csvfile.New(a.config.Storage.Path)
	if err != nil {
		return fmt.Errorf("создание хранилища: %w", err)
	}
	a.service = service.NewTaskService(storage)

	logger.Debug("App: Инициализация завершена", zap.String("store", storage.Path()))
	return nil
}

func (a *App) Service() *service.TaskService {
	return a.service
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) InvocationID() string {
	return a.invocationID
}

func (a *App) Close() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	a.shutdowns = nil
}
