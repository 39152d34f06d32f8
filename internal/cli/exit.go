package cli

import (
	"errors"
	"fmt"
	"io"

	"todoList/internal/logger"
	"todoList/internal/repository"
	"todoList/internal/service"

	"go.uber.org/zap"
)

const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNotFound = 3
)

// failure - ошибка, после которой команда завершается с ExitFailure:
// хранилище, конфиг, логгер.
type failure struct {
	err error
}

func (f *failure) Error() string { return f.err.Error() }
func (f *failure) Unwrap() error { return f.err }

func fail(err error) error {
	if err == nil {
		return nil
	}
	return &failure{err: err}
}

// ExitCode переводит ошибку команды в код завершения процесса.
// Ошибки cobra (неизвестный флаг, число аргументов) считаются ошибками использования.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var busErr *service.BusinessError
	if errors.As(err, &busErr) {
		return mapBusinessErrorToExit(busErr.Code)
	}
	var f *failure
	if errors.As(err, &f) || repository.IsIOError(err) || repository.IsDecodeError(err) {
		return ExitFailure
	}
	return ExitUsage
}

func mapBusinessErrorToExit(code string) int {
	switch code {
	case service.CodeNotFound:
		return ExitNotFound
	case service.CodeValidationError:
		return ExitUsage
	default:
		return ExitFailure
	}
}

func reportError(w io.Writer, err error) {
	var busErr *service.BusinessError
	if errors.As(err, &busErr) {
		logger.Info("CLI: Бизнес-ошибка", zap.String("error_code", busErr.Code), zap.Any("details", busErr.Details))
		fmt.Fprintln(w, busErr.Message)
		return
	}

	code := ExitCode(err)
	if code == ExitUsage {
		fmt.Fprintf(w, "Error: %v\nRun 'tasks --help' for usage.\n", err)
		return
	}
	logger.Debug("CLI: Команда завершилась с ошибкой", zap.Error(err))
	fmt.Fprintf(w, "Error: %v\n", err)
}
