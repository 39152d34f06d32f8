package cli

import (
	"errors"
	"fmt"
	"testing"

	"todoList/internal/repository"
	"todoList/internal/service"

	"github.com/stretchr/testify/assert"
)

// TestExitCode тестирует соответствие ошибок кодам завершения
func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: ExitOK},
		{name: "not found", err: service.NewNotFound(3), expected: ExitNotFound},
		{name: "validation", err: service.NewValidationError("task id", "bad"), expected: ExitUsage},
		{name: "unknown business code", err: service.NewBusinessError("OTHER", "x"), expected: ExitFailure},
		{name: "io error", err: fmt.Errorf("wrap: %w", &repository.IOError{Op: "запись", Path: "t", Err: errors.New("disk full")}), expected: ExitFailure},
		{name: "decode error", err: &repository.DecodeError{Path: "t", Line: 2, Err: errors.New("bad")}, expected: ExitFailure},
		{name: "explicit failure", err: fail(errors.New("config")), expected: ExitFailure},
		{name: "cobra usage", err: errors.New(`unknown command "x" for "tasks"`), expected: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

// TestParseTaskID тестирует разбор id из аргумента
func TestParseTaskID(t *testing.T) {
	id, err := parseTaskID(" 12 ")
	assert.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, raw := range []string{"", "abc", "-1", "0", "1.5"} {
		_, err := parseTaskID(raw)
		var busErr *service.BusinessError
		if assert.True(t, errors.As(err, &busErr), "raw %q", raw) {
			assert.Equal(t, service.CodeValidationError, busErr.Code)
		}
	}
}
