package task

import (
	"strings"
	"time"
)

const (
	DueToday    = "today"
	DueTomorrow = "tomorrow"
)

// ResolveDue переводит символьный срок в конец соответствующего дня
// (23:59:59.999 по локальному времени now). Нераспознанный ввод даёт nil.
func ResolveDue(input string, now time.Time) *time.Time {
	var days int
	switch strings.ToLower(strings.TrimSpace(input)) {
	case DueToday:
		days = 0
	case DueTomorrow:
		days = 1
	default:
		return nil
	}

	now = now.Local()
	day := now.AddDate(0, 0, days)
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), time.Local)
	return &end
}
