package service

import (
	"fmt"
	"strconv"

	repo "todoList/internal/repository"
)

const (
	CodeNotFound        = "NOT_FOUND"
	CodeValidationError = "VALIDATION_ERROR"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

type Detail struct {
	Key     string
	Payload any
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func ToDetail(key string, payload any) Detail {
	return Detail{
		Key:     key,
		Payload: payload,
	}
}

func NewBusinessError(code string, message string, details ...Detail) *BusinessError {
	busErr := &BusinessError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}

	for _, detail := range details {
		busErr.Details[detail.Key] = detail.Payload
	}

	return busErr
}

func NewNotFound(id int) *BusinessError {
	busErr := NewBusinessError(
		CodeNotFound,
		"Task with ID "+strconv.Itoa(id)+" not found.",
		ToDetail("resource", "task"),
		ToDetail("id", id),
	)
	busErr.Err = repo.ErrNotFound
	return busErr
}

func NewValidationError(field, reason string) *BusinessError {
	return NewBusinessError(
		CodeValidationError,
		fmt.Sprintf("invalid %s: %s", field, reason),
		ToDetail("field", field),
		ToDetail("reason", reason),
	)
}
