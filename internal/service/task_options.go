package service

import (
	"time"
)

type Option func(*TaskService)

// WithClock подменяет источник текущего времени, нужно тестам.
func WithClock(now func() time.Time) Option {
	if now == nil {
		return nil
	}
	return func(s *TaskService) {
		s.now = now
	}
}
